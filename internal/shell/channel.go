// Package shell communicates with the wrapping shell function.
//
// A child process cannot change its parent shell's working directory or
// replace it with an editor, so proj writes the desired command to a
// well-known channel file instead. The wrapper printed by `proj init`
// evaluates and removes that file after every invocation.
package shell

import (
	"fmt"
	"os"
	"strings"
)

// Send writes "<command> '<arg>'" to the channel file for the shell
// wrapper to evaluate. The arg is single-quoted so that paths with
// spaces or shell metacharacters survive the wrapper's eval; embedded
// single quotes are escaped so they cannot terminate the quoting.
func Send(channelFile, command, arg string) error {
	contents := fmt.Sprintf("%s '%s'\n", command, quoteEscape(arg))
	if err := os.WriteFile(channelFile, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("communicate with shell: %w", err)
	}
	return nil
}

// quoteEscape closes the surrounding single quotes, emits an escaped
// quote, and reopens them, the only way to embed ' inside a
// single-quoted POSIX shell string.
func quoteEscape(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
