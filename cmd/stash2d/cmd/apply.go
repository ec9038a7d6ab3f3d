package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/oneconcern/stash2d/pkg/dlogger"
	"github.com/oneconcern/stash2d/pkg/errors"
	"github.com/oneconcern/stash2d/pkg/stash"
	"github.com/oneconcern/stash2d/pkg/stash/status"
	"github.com/oneconcern/stash2d/pkg/vcs"
	"github.com/spf13/cobra"
)

// applyCmd merges a previously saved stash onto the current working tree
var applyCmd = &cobra.Command{
	Use:   "apply <stash-dir> [<subtree-path>]",
	Short: "Merge a saved stash onto the current working tree",
	Long: `Merge the change captured in <stash-dir> onto the working tree of the
current directory, via a three-way merge driven by a temporary two-commit
repository built from the stash.

A clean merge applies all changes. A conflicting merge leaves conflict
markers in the working tree for manual resolution; this is a regular
outcome, not a failure. The <subtree-path> must match the one used at
save time, if any.`,
	Args: cobra.RangeArgs(1, 2),
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
			stash.Subtree(subtreeArg(args, 1)),
			stash.WithNaming(config.naming()),
			stash.TempRoot(stashFlags.apply.tempRoot),
			stash.Logger(logger),
		)

		infoLogger.Println("applying...")
		outcome, err := s.Apply(ctx, args[0])
		if err != nil && !errors.Is(err, status.ErrCleanup) {
			wrapFatalln("apply stash", err)
			return
		}

		switch outcome {
		case vcs.PickClean:
			color.New(color.FgGreen).Fprintln(os.Stdout, "merged clean")
		case vcs.PickConflict:
			color.New(color.FgYellow).Fprintln(os.Stdout, "conflicts exist: resolve them in the working tree")
		}
		if err != nil {
			// a cleanup failure is reported but never masks the merge outcome
			color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		}
		infoLogger.Println("done.")
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	addTempRootFlag(applyCmd)
}
