package main

import (
	"context"
	"fmt"
	"os"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/shell"
)

func runEdit(ctx context.Context, query string) error {
	cfg := config.FromContext(ctx)

	editor := editorFor(cfg, os.Getenv)
	if editor == "" {
		return fmt.Errorf("no editor configured, set the $EDITOR environment variable or editor in the config file")
	}

	projects, _, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	project, err := selectProject(projects, query, fmt.Sprintf("Which project should be opened with %s?", editor))
	if err != nil {
		return err
	}

	// The editor must run in the calling shell, not as a child of proj
	return shell.Send(cfg.CommandFile, editor, project.Path)
}
