// Package build holds build-time version information injected via ldflags.
//
// To inject values at build time:
//
//	go build -ldflags "-X github.com/haivivi/stackstr/cmd/stackstr/internal/build.Version=v1.0.0 \
//	  -X github.com/haivivi/stackstr/cmd/stackstr/internal/build.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/haivivi/stackstr/cmd/stackstr/internal/build.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package build

import (
	"fmt"
	"runtime"

	"github.com/haivivi/stackstr/pkg/stackstr"
)

// These variables are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the structured form of the build information.
type Info struct {
	Version  string `json:"version" yaml:"version"`
	Commit   string `json:"commit" yaml:"commit"`
	Date     string `json:"date" yaml:"date"`
	Platform string `json:"platform" yaml:"platform"`
	Overflow string `json:"overflow" yaml:"overflow"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version:  Version,
		Commit:   Commit,
		Date:     Date,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Overflow: OverflowPolicy(),
	}
}

// OverflowPolicy names the overflow policy compiled into the library.
func OverflowPolicy() string {
	if stackstr.TruncateOnOverflow {
		return "truncate"
	}
	return "strict"
}

// String returns a formatted version string.
func String() string {
	i := Get()
	return fmt.Sprintf("stackstr %s (%s) built %s %s overflow=%s",
		i.Version, i.Commit, i.Date, i.Platform, i.Overflow)
}

// Text implements cli.Texter.
func (i Info) Text() string {
	return String()
}
