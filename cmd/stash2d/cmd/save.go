package cmd

import (
	"context"

	"github.com/oneconcern/stash2d/pkg/dlogger"
	"github.com/oneconcern/stash2d/pkg/errors"
	"github.com/oneconcern/stash2d/pkg/stash"
	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/vcs"
	"github.com/spf13/cobra"
)

// saveCmd captures the delta between two revisions as a stash directory
var saveCmd = &cobra.Command{
	Use:   "save <baseline-revision> <code-revision> <destination-dir> [<subtree-path>]",
	Short: "Capture the delta between two revisions as a stash",
	Long: `Capture the changes between two revisions as a timestamped stash directory
under <destination-dir>, holding the pre-change content of touched files in a
baseline tree and their post-change content in a code tree.

The two revisions may be given in either order: the ancestor is taken as the
baseline. Unrelated revisions are refused. The optional <subtree-path>
restricts the capture to files at or below that path.`,
	Args: cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		logger, err := dlogger.GetLogger(stashFlags.root.logLevel)
		if err != nil {
			wrapFatalln("failed to set log level", err)
			return
		}

		sys := vcs.NewGit(
			vcs.GitBinary(stashFlags.root.gitBinary),
			vcs.Logger(logger),
		)
		s := stash.New(sys,
			stash.Subtree(subtreeArg(args, 3)),
			stash.WithNaming(config.naming()),
			stash.Logger(logger),
		)

		infoLogger.Println("saving...")
		stashPath, err := s.Save(ctx, args[0], args[1], args[2])
		if err != nil {
			if errors.Is(err, status.ErrUnrelatedRevisions) {
				wrapFatalln("neither revision is an ancestor of the other", err)
				return
			}
			wrapFatalln("save stash", err)
			return
		}
		infoLogger.Printf("saved to %q", stashPath)
		infoLogger.Println("done.")
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
