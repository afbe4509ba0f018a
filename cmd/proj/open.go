package main

import (
	"context"
	"fmt"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/launch"
	"github.com/proj-dev/proj/internal/output"
)

func runOpen(ctx context.Context, query string) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, _, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	project, err := selectProject(projects, query, "Which project would you like to open?")
	if err != nil {
		return err
	}

	// Start script takes precedence over IDE projects
	if launch.HasStartScript(project.Path, cfg.Open.StartScript) {
		out.Printf("Starting %q...\n", project.Name)
		return launch.RunStartScript(ctx, project.Path, cfg.Open.StartScript)
	}

	if workspace, ok := launch.FileWithExt(project.Path, "xcworkspace"); ok {
		out.Printf("Opening %q in Xcode...\n", project.Name)
		return launch.Open(ctx, workspace)
	}
	if xcodeproj, ok := launch.FileWithExt(project.Path, "xcodeproj"); ok {
		out.Printf("Opening %q in Xcode...\n", project.Name)
		return launch.Open(ctx, xcodeproj)
	}

	return fmt.Errorf("no environment or system app to open for project: %s", project.Name)
}
