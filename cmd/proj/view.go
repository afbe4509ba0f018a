package main

import (
	"context"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/launch"
	"github.com/proj-dev/proj/internal/output"
)

func runView(ctx context.Context, query string) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, _, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	project, err := selectProject(projects, query, "Which project should open in the file explorer?")
	if err != nil {
		return err
	}

	out.Printf("Opening %q in file explorer...\n", project.Name)
	return launch.Open(ctx, project.Path)
}
