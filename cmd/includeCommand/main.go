package includeCommand

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/t-kuni/stignore/domain/model/ignoreFile"
	"github.com/t-kuni/stignore/domain/service/rootFind"
	"github.com/t-kuni/stignore/domain/service/syncInclude"
)

type IncludeCommand struct {
	CobraCommand *cobra.Command
}

func NewIncludeCommand(
	rootFindService *rootFind.RootFindService,
	syncIncludeService *syncInclude.SyncIncludeService,
	silent *bool,
) *IncludeCommand {
	cmd := &cobra.Command{
		Use:   "include",
		Short: fmt.Sprintf("Include %s from %s", ignoreFile.Secondary, ignoreFile.Primary),
		Long: fmt.Sprintf(`Adds "%s %s" to %s at the root of the Syncthing folder,
creating %s if it doesn't exist. %s is meant to be synced across devices
while %s stays local.`,
			ignoreFile.IncludeDirective, ignoreFile.Secondary, ignoreFile.Primary,
			ignoreFile.Secondary, ignoreFile.Secondary, ignoreFile.Primary),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootFindService.FindRoot()
			if err != nil {
				return err
			}

			added, err := syncIncludeService.Link(root.Dir)
			if err != nil {
				return err
			}

			if *silent {
				return nil
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added \"%s %s\" to %s\n", ignoreFile.IncludeDirective, ignoreFile.Secondary, root.Dir)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already includes %s\n", ignoreFile.Primary, ignoreFile.Secondary)
			}
			return nil
		},
	}

	return &IncludeCommand{
		CobraCommand: cmd,
	}
}
