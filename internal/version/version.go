// Package version exposes build metadata stamped in via -ldflags.
package version

import "fmt"

var (
	// Name is the application name.
	Name = "Waveline"

	// Version, BuildTime and GitCommit default to development values and
	// are overridden by the release build.
	Version   = "1.0.0"
	BuildTime = ""
	GitCommit = ""
)

// Info is the build metadata in a serializable form.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildTime string `json:"buildTime,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// GetInfo snapshots the stamped build variables.
func GetInfo() Info {
	return Info{
		Name:      Name,
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

// String renders a one-line version banner, abbreviating the commit hash.
func (i Info) String() string {
	s := fmt.Sprintf("%s v%s", i.Name, i.Version)
	if i.GitCommit != "" {
		s += fmt.Sprintf(" (%s)", i.GitCommit[:min(7, len(i.GitCommit))])
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	return s
}
