// Package config loads proj configuration from ~/.config/proj/config.toml.
//
// All keys are optional:
//
//	store_path = "~/.proj/projects.json"  # project map location
//	command_file = "/tmp/proj_cmd"        # shell wrapper channel file
//	editor = "nvim"                       # overrides $EDITOR for edit
//
//	[open]
//	start_script = "start"                # script looked up by open
//
// A changed command_file must be mirrored in the PROJ_CMD_FILE
// environment variable so the shell wrapper printed by `proj init`
// reads the same file.
package config
