package checkCommand

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/t-kuni/stignore/domain/service/ignoreCheck"
	"github.com/t-kuni/stignore/domain/service/rootFind"
)

type CheckCommand struct {
	CobraCommand *cobra.Command
}

func NewCheckCommand(
	rootFindService *rootFind.RootFindService,
	ignoreCheckService *ignoreCheck.IgnoreCheckService,
) *CheckCommand {
	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Show whether paths are ignored",
		Long: `Shows whether each path is ignored by the patterns of the enclosing Syncthing
folder, following #include lines. Matching uses gitignore rules and treats
(?i) patterns as case sensitive, so results are an approximation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := rootFindService.FindRoot()
			if err != nil {
				return err
			}

			results, err := ignoreCheckService.Check(root, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case r.Outside:
					fmt.Fprintf(out, "%s: outside of %s\n", r.Path, root.Dir)
				case r.Ignored:
					fmt.Fprintf(out, "%s: ignored (%s)\n", r.Path, r.Pattern)
				default:
					fmt.Fprintf(out, "%s: not ignored\n", r.Path)
				}
			}
			return nil
		},
	}

	return &CheckCommand{
		CobraCommand: cmd,
	}
}
