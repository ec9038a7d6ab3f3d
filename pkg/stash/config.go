package stash

import (
	"time"
)

// Naming groups the directory and file naming conventions used by stash
// operations. It is passed in explicitly rather than read from globals, so
// parallel runs may use distinct namings.
type Naming struct {
	// BaselineDir is the stash subdirectory holding pre-change content
	BaselineDir string `json:"baseline" yaml:"baseline"`

	// CodeDir is the stash subdirectory holding post-change content
	CodeDir string `json:"code" yaml:"code"`

	// Suffix is appended to the timestamp in generated stash directory names
	Suffix string `json:"suffix" yaml:"suffix"`

	// TimeFormat lays out the timestamp in generated stash directory names
	TimeFormat string `json:"timeFormat" yaml:"timeFormat"`

	// MetadataDir is the name of the version-control metadata directory
	// inside ephemeral workspaces
	MetadataDir string `json:"metadataDir" yaml:"metadataDir"`
}

// DefaultNaming returns the standard stash layout
func DefaultNaming() Naming {
	return Naming{
		BaselineDir: "Baseline",
		CodeDir:     "Code",
		Suffix:      "stash2d",
		TimeFormat:  "2006-01-02 15.04.05",
		MetadataDir: ".git",
	}
}

// StashDirName yields the name of a stash directory created at time t
func (n Naming) StashDirName(t time.Time) string {
	return t.Format(n.TimeFormat) + " - " + n.Suffix
}
