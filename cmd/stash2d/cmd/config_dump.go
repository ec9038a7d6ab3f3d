// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the config used",
	Long:  `Print the effective config used by the invocation of the stash2d command`,
	Run: func(cmd *cobra.Command, args []string) {
		b, err := yaml.Marshal(config)
		if err != nil {
			wrapFatalln("marshal config", err)
			return
		}
		logStdOut("%s", string(b))
	},
}

func init() {
	configCmd.AddCommand(dumpCmd)
}
