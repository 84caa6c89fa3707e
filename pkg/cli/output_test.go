package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type report struct {
	Content string `json:"content" yaml:"content"`
	Len     int    `json:"len" yaml:"len"`
}

func (r report) Text() string { return r.Content }

func TestOutputFormats(t *testing.T) {
	r := report{Content: "HelloWo", Len: 7}

	tests := []struct {
		format OutputFormat
		want   string
	}{
		{FormatYAML, "content: HelloWo\nlen: 7\n"},
		{"", "content: HelloWo\nlen: 7\n"},
		{FormatJSON, "{\n  \"content\": \"HelloWo\",\n  \"len\": 7\n}\n"},
		{FormatRaw, "HelloWo\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Output(r, OutputOptions{Format: tt.format, Writer: &buf}))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestOutputRawFallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Output(map[string]int{"count": 1}, OutputOptions{Format: FormatRaw, Writer: &buf}))
	require.Equal(t, "count: 1\n", buf.String())
}

func TestOutputUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Output(report{}, OutputOptions{Format: "xml", Writer: &buf})
	require.ErrorContains(t, err, "unsupported output format")
	require.Zero(t, buf.Len())
}

func TestOutputFormatIsValid(t *testing.T) {
	require.True(t, FormatYAML.IsValid())
	require.True(t, FormatJSON.IsValid())
	require.True(t, FormatRaw.IsValid())
	require.False(t, OutputFormat("").IsValid())
	require.False(t, OutputFormat("table").IsValid())
}
