package main

import (
	"fmt"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/resolver"
	"github.com/proj-dev/proj/internal/store"
	"github.com/proj-dev/proj/internal/ui/prompt"
)

// loadProjects reads the project map and returns it with its path, so
// mutating commands can persist back to the same location.
func loadProjects(cfg *config.Config) (store.ProjectMap, string, error) {
	path, err := cfg.GetStorePath()
	if err != nil {
		return nil, "", err
	}

	projects, err := store.Load(path)
	if err != nil {
		return nil, "", err
	}

	return projects, path, nil
}

// selectProject resolves the query against the project map, prompting
// on the terminal when the query is empty or ambiguous.
func selectProject(projects store.ProjectMap, query, heading string) (resolver.Project, error) {
	return resolver.Resolve(projects, query, heading, prompt.Terminal())
}

// editorFor returns the editor command for the edit mode: the config
// value wins over $EDITOR.
func editorFor(cfg *config.Config, env func(string) string) string {
	if cfg.Editor != "" {
		return cfg.Editor
	}
	return env("EDITOR")
}

// confirm asks a yes/no question; cancellation counts as no.
func confirm(question string) (bool, error) {
	res, err := prompt.Confirm(question)
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	return res.Confirmed && !res.Cancelled, nil
}
