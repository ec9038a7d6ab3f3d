// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stash2d",
	Short: "stash2d captures and re-applies deltas between revisions",
	Long: `stash2d captures the changes between two revisions of a version-controlled tree
as a portable pair of directory snapshots (a baseline tree and a code tree),
and later re-applies those changes to a working tree through a real three-way
merge, so conflicts are surfaced with full version-control semantics.
`,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addGitBinaryFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("baseline", "Baseline")
	viper.SetDefault("code", "Code")
	viper.SetDefault("suffix", "stash2d")
	viper.SetDefault("timeformat", "2006-01-02 15.04.05")
	viper.SetDefault("metadatadir", ".git")
	viper.SetDefault("gitbinary", "git")
	viper.SetDefault("loglevel", "none")
	if os.Getenv("STASH2D_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("STASH2D_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.stash2d")
		viper.SetConfigName(".stash2d")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
	config.setStashParams(&stashFlags)
}
