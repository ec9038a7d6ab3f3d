package cmd

import (
	"github.com/oneconcern/stash2d/pkg/stash"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Baseline    string `json:"baseline" yaml:"baseline"`       // Stash subdirectory for pre-change content
	Code        string `json:"code" yaml:"code"`               // Stash subdirectory for post-change content
	Suffix      string `json:"suffix" yaml:"suffix"`           // Suffix of generated stash directory names
	Timeformat  string `json:"timeformat" yaml:"timeformat"`   // Timestamp layout of generated stash directory names
	Metadatadir string `json:"metadatadir" yaml:"metadatadir"` // Version-control metadata directory name
	Gitbinary   string `json:"gitbinary" yaml:"gitbinary"`     // Git executable to drive
	Loglevel    string `json:"loglevel" yaml:"loglevel"`       // Log level (none, info, debug)
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *CLIConfig) setStashParams(flags *flagsT) {
	if flags.root.logLevel == "" {
		flags.root.logLevel = c.Loglevel
	}
	if flags.root.gitBinary == "" {
		flags.root.gitBinary = c.Gitbinary
	}
}

func (c *CLIConfig) naming() stash.Naming {
	n := stash.DefaultNaming()
	if c.Baseline != "" {
		n.BaselineDir = c.Baseline
	}
	if c.Code != "" {
		n.CodeDir = c.Code
	}
	if c.Suffix != "" {
		n.Suffix = c.Suffix
	}
	if c.Timeformat != "" {
		n.TimeFormat = c.Timeformat
	}
	if c.Metadatadir != "" {
		n.MetadataDir = c.Metadatadir
	}
	return n
}

// configCmd groups the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the stash2d CLI config",
	Long: `Commands to manage the stash2d CLI config.

Configuration is read from .stash2d.yaml in the current directory or in
$HOME/.stash2d, and from environment variables. The STASH2D_CONFIG
environment variable overrides the config file location.
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
