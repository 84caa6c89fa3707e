package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haivivi/stackstr/pkg/stackstr"
)

// Theme defines the colors used for escaped content.
type Theme struct {
	Text        lipgloss.Color
	Placeholder lipgloss.Color
	Dim         lipgloss.Color
}

// DefaultTheme highlights placeholders in red on plain text.
var DefaultTheme = Theme{
	Text:        lipgloss.Color("#e6edf3"),
	Placeholder: lipgloss.Color("#ff5f56"),
	Dim:         lipgloss.Color("#6e7681"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Summary     lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(t.Text),
		Placeholder: lipgloss.NewStyle().Bold(true).Foreground(t.Placeholder),
		Summary:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// RenderEscaped renders the content of s with control bytes replaced by
// stackstr.Placeholder, styling the replacements so they stand out from
// literal placeholder characters.
func (st Styles) RenderEscaped(s stackstr.Storage) string {
	var out, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(st.Text.Render(run.String()))
			run.Reset()
		}
	}
	for _, c := range s.Bytes() {
		switch {
		case c == '\t' || c == '\n':
			// Written unstyled: lipgloss expands tabs and pads lines.
			flush()
			out.WriteByte(c)
		case c < 0x20:
			flush()
			out.WriteString(st.Placeholder.Render(string(rune(stackstr.Placeholder))))
		default:
			run.WriteByte(c)
		}
	}
	flush()
	return out.String()
}

// RenderSummary renders a one-line usage summary of s.
func (st Styles) RenderSummary(s stackstr.Storage) string {
	return st.Summary.Render(FormatUsage(s))
}
