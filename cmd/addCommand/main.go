package addCommand

import (
	"github.com/spf13/cobra"
	"github.com/t-kuni/stignore/domain/repository/config"
	"github.com/t-kuni/stignore/domain/service/addPatterns"
)

type AddCommand struct {
	CobraCommand *cobra.Command
}

// NewAddCommand builds the root command. silent is the persistent --silent
// flag, owned by the caller.
func NewAddCommand(addPatternsService *addPatterns.AddPatternsService, cfg *config.Config, silent *bool) *AddCommand {
	targetFlag := cfg.Target
	absoluteFlag := cfg.Absolute
	previewFlag := cfg.Preview

	cmd := &cobra.Command{
		Use:   "stignore [flags] PATTERN...",
		Short: "Add Syncthing ignore patterns to the enclosing Syncthing folder",
		Long: `Adds Syncthing ignore patterns (https://docs.syncthing.net/users/ignoring) to the
Syncthing folder containing the current working directory.

Patterns are rewritten relative to the folder root, so "stignore '*.log'" run
in <folder>/app/logs adds "app/logs/*.log". Use --absolute to copy patterns as-is.

Targets:
  auto           append to .stignore_sync if .stignore includes it,
                 otherwise to .stignore (created if missing)
  stignore       append to .stignore
  stignore_sync  append to .stignore_sync`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			preview := previewFlag
			if *silent && !cmd.Flags().Changed("preview") {
				preview = false
			}

			_, err := addPatternsService.Add(addPatterns.AddParams{
				Patterns: args,
				Target:   targetFlag,
				Absolute: absoluteFlag,
				Preview:  preview,
				Silent:   *silent,
			}, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().VarP(&targetFlag, "target", "t", "file to append patterns to: auto, stignore or stignore_sync")
	cmd.Flags().BoolVarP(&absoluteFlag, "absolute", "a", absoluteFlag, "copy patterns as-is, without the path from the folder root to the current directory")
	cmd.Flags().BoolVarP(&previewFlag, "preview", "p", previewFlag, "display planned changes and wait for confirmation")

	return &AddCommand{
		CobraCommand: cmd,
	}
}
