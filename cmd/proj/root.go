package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/proj-dev/proj/internal/config"
	"github.com/proj-dev/proj/internal/log"
	"github.com/proj-dev/proj/internal/output"
	"github.com/proj-dev/proj/internal/ui/styles"
)

var (
	// Mode flags (at most one may be set)
	saveFlag   bool
	deleteFlag bool
	viewFlag   bool
	openFlag   bool
	editFlag   bool
	resetFlag  bool
	copyFlag   bool

	// Global flags
	verbose bool
	quiet   bool
)

// rootCmd represents the base command; without a mode flag it loads
// (jumps to) a project.
var rootCmd = &cobra.Command{
	Use:   "proj [flags] [project]",
	Short: "Quickly open and interact with project directories",
	Long: `proj stores named bookmarks for project directories and jumps
to them from anywhere.

The project argument allows partial matching: an exact name always wins,
a unique substring match resolves directly, and an ambiguous one lists
the matching projects so you can narrow down. Run proj without arguments
to pick from the full listing.

Changing the shell's directory requires the wrapper function printed by
'proj init <shell>'.`,
	Example: `  proj api             # jump to the project named (or matching) "api"
  proj                 # list projects and pick one
  proj -s api          # bookmark the current directory as "api"
  proj -d api          # delete the "api" bookmark
  proj -v api          # open "api" in the system file explorer
  proj -o api          # run its start script or open its Xcode project
  proj -e api          # open "api" in $EDITOR
  proj -c api          # copy the path of "api" to the clipboard
  proj --reset         # remove all bookmarks`,
	Args:                       cobra.MaximumNArgs(1),
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Logger is created here so it sees the parsed flag values
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		switch {
		case saveFlag:
			return runSave(ctx, query)
		case deleteFlag:
			return runDelete(ctx, query)
		case viewFlag:
			return runView(ctx, query)
		case openFlag:
			return runOpen(ctx, query)
		case editFlag:
			return runEdit(ctx, query)
		case resetFlag:
			return runReset(ctx)
		default:
			return runLoad(ctx, query, copyFlag)
		}
	},
}

// Execute sets up the command context and runs the root command.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Plain output through pipes
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		styles.Plain()
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&saveFlag, "save", "s", false, "Save current directory as project")
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Delete project with name")
	rootCmd.Flags().BoolVarP(&viewFlag, "view", "v", false, "View project in system file explorer")
	rootCmd.Flags().BoolVarP(&openFlag, "open", "o", false, "Open project environment or IDE")
	rootCmd.Flags().BoolVarP(&editFlag, "edit", "e", false, "Open project in $EDITOR")
	rootCmd.Flags().BoolVar(&resetFlag, "reset", false, "Reset list of projects")
	rootCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy project path to clipboard instead of switching")
	rootCmd.MarkFlagsMutuallyExclusive("save", "delete", "view", "open", "edit", "reset", "copy")

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newInitCmd())
}
