package main

import (
	"context"
	"fmt"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/output"
	"github.com/proj-dev/proj/internal/store"
)

func runDelete(ctx context.Context, query string) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, path, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	project, err := selectProject(projects, query, "Which project should be deleted?")
	if err != nil {
		return err
	}

	ok, err := confirm(fmt.Sprintf("Delete %q?", project.Name))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	delete(projects, project.Name)
	if err := store.Save(path, projects); err != nil {
		return err
	}

	out.Printf("Deleted project %q\n", project.Name)
	return nil
}
