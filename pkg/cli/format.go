package cli

import (
	"github.com/dustin/go-humanize"

	"github.com/haivivi/stackstr/pkg/stackstr"
)

// FormatUsage describes how much of the capacity of s is in use.
func FormatUsage(s stackstr.Storage) string {
	return humanize.IBytes(uint64(s.Len())) + " of " + humanize.IBytes(uint64(s.Capacity())) + " used"
}
