package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/output"
	"github.com/proj-dev/proj/internal/shell"
)

func runLoad(ctx context.Context, query string, copyPath bool) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, _, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	project, err := selectProject(projects, query, "Which project should be loaded?")
	if err != nil {
		return err
	}

	if copyPath {
		if err := clipboard.WriteAll(project.Path); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		out.Printf("Copied path of %q to clipboard\n", project.Name)
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if project.Path == cwd {
		return fmt.Errorf("already in project directory")
	}

	out.Printf("Switching to %q\n", project.Name)
	return shell.Send(cfg.CommandFile, "cd", project.Path)
}
