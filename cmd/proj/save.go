package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/output"
	"github.com/proj-dev/proj/internal/store"
	"github.com/proj-dev/proj/internal/ui/prompt"
)

func runSave(ctx context.Context, query string) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	projects, path, err := loadProjects(cfg)
	if err != nil {
		return err
	}

	name := query
	if name == "" {
		res, err := prompt.TextInput("Enter new project name:", "")
		if err != nil {
			return fmt.Errorf("read project name: %w", err)
		}
		if res.Cancelled {
			return nil
		}
		name = strings.TrimSpace(res.Value)
	}
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}

	// Never overwrite unless the user explicitly confirms
	if _, exists := projects[name]; exists {
		ok, err := confirm(fmt.Sprintf("Project named %q already exists. Overwrite?", name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	projects[name] = cwd
	if err := store.Save(path, projects); err != nil {
		return err
	}

	out.Printf("Saved project %q\n", name)
	return nil
}
