package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "init <shell>",
		Short:     "Output shell wrapper function",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.ExactArgs(1),
		Long: `Output a shell wrapper function that lets proj change directories.

A subprocess cannot change its parent shell's working directory, so proj
writes the intended command to a channel file instead. The wrapper runs
proj and then evaluates and removes that file.

The channel file defaults to /tmp/proj_cmd; override it with the
PROJ_CMD_FILE environment variable (and command_file in the config).`,
		Example: `  eval "$(proj init bash)"           # add to ~/.bashrc
  eval "$(proj init zsh)"            # add to ~/.zshrc
  proj init fish | source            # add to ~/.config/fish/config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "fish":
				fmt.Print(fishInit)
			case "bash":
				fmt.Print(bashInit)
			case "zsh":
				fmt.Print(zshInit)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: fish, bash, zsh)", args[0])
			}
			return nil
		},
	}

	return cmd
}

const bashInit = `# proj shell wrapper
# Install: eval "$(proj init bash)"

proj() {
    local cmd_file="${PROJ_CMD_FILE:-/tmp/proj_cmd}"
    command proj "$@"
    if [[ -f "$cmd_file" ]]; then
        eval "$(cat "$cmd_file")"
        rm -f "$cmd_file"
    fi
}
`

const zshInit = `# proj shell wrapper
# Install: eval "$(proj init zsh)"

proj() {
    local cmd_file="${PROJ_CMD_FILE:-/tmp/proj_cmd}"
    command proj "$@"
    if [[ -f "$cmd_file" ]]; then
        eval "$(cat "$cmd_file")"
        rm -f "$cmd_file"
    fi
}
`

const fishInit = `# proj shell wrapper
# Install: proj init fish | source
# Or add to config.fish: proj init fish | source

function proj --wraps=proj --description 'Directory bookmarks'
    set -l cmd_file "$PROJ_CMD_FILE"
    if test -z "$cmd_file"
        set cmd_file /tmp/proj_cmd
    end
    command proj $argv
    if test -f "$cmd_file"
        eval (cat "$cmd_file")
        rm -f "$cmd_file"
    end
end
`
