package main

import (
	"context"
	"fmt"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/output"
	"github.com/proj-dev/proj/internal/resolver"
	"github.com/proj-dev/proj/internal/store"
)

func runReset(ctx context.Context) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, path, err := loadProjects(cfg)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return resolver.ErrNoProjects
	}

	suffix := "s"
	if len(projects) == 1 {
		suffix = ""
	}
	ok, err := confirm(fmt.Sprintf("Remove %d saved project%s?", len(projects), suffix))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := store.Remove(path); err != nil {
		return err
	}

	out.Println("Removed all saved projects")
	return nil
}
