// Package launch starts OS-level programs for a project directory:
// the system file explorer, Xcode workspaces/projects, and per-project
// start scripts.
package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/proj-dev/proj/internal/log"
)

// openCommand returns the platform opener for files and directories.
func openCommand() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "linux":
		return "xdg-open", nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

// Open hands the path to the operating system's opener. The opener is
// left running detached; only spawn failures are reported.
func Open(ctx context.Context, path string) error {
	opener, err := openCommand()
	if err != nil {
		return err
	}

	l := log.FromContext(ctx)
	l.Command(opener, path)

	cmd := exec.Command(opener, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// Detach so the opener outlives proj.
	return cmd.Process.Release()
}

// FileWithExt returns the first directory entry with the given
// extension (without the dot), in directory-listing order.
func FileWithExt(dir, ext string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if strings.TrimPrefix(filepath.Ext(entry.Name()), ".") == ext {
			return filepath.Join(dir, entry.Name()), true
		}
	}
	return "", false
}

// HasStartScript reports whether dir contains a regular file named name.
func HasStartScript(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.Mode().IsRegular()
}

// RunStartScript executes ./<name> inside dir, wired to the process's
// terminal, and waits for it to finish.
func RunStartScript(ctx context.Context, dir, name string) error {
	l := log.FromContext(ctx)
	l.Command("./" + name)

	cmd := exec.CommandContext(ctx, "./"+name)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("start script: %w", err)
	}
	return nil
}
