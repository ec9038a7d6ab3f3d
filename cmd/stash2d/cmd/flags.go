// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		logLevel  string
		gitBinary string
	}
	apply struct {
		tempRoot string
	}
}

var stashFlags flagsT

func addLogLevelFlag(cmd *cobra.Command) string {
	const flag = "loglevel"
	cmd.PersistentFlags().StringVar(&stashFlags.root.logLevel, flag, "",
		"log level (none, info, debug)")
	return flag
}

func addGitBinaryFlag(cmd *cobra.Command) string {
	const flag = "git"
	cmd.PersistentFlags().StringVar(&stashFlags.root.gitBinary, flag, "",
		"git executable to drive")
	return flag
}

func addTempRootFlag(cmd *cobra.Command) string {
	const flag = "temp-root"
	cmd.Flags().StringVar(&stashFlags.apply.tempRoot, flag, "",
		"parent directory for the temporary repository (default: system temp)")
	return flag
}

// subtreeArg picks the optional trailing subtree-path argument
func subtreeArg(args []string, after int) string {
	if len(args) > after {
		return args[after]
	}
	return ""
}
