// Package prompt provides interactive terminal prompts.
//
// Available prompts:
//   - [Line]: blocking line-based print/read used by project resolution
//   - [Confirm]: yes/no confirmation prompt
//   - [TextInput]: single-line text input
package prompt
