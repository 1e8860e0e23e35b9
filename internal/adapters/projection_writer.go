package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

var (
	groupHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	rowIndexStyle     = lipgloss.NewStyle().Foreground(mutedColor).Width(4).Align(lipgloss.Right)
)

type ProjectionWriterAdapter struct{}

func NewProjectionWriterAdapter() ProjectionWriterAdapter {
	return ProjectionWriterAdapter{}
}

func (a ProjectionWriterAdapter) WriteProjection(w io.Writer, projection types.Projection, format types.OutputFormat) error {
	var err error
	switch format {
	case types.OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(projection)
	case types.OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err = encoder.Encode(projection)
		if err == nil {
			err = encoder.Close()
		}
	case types.OutputFormatText, "":
		_, err = io.WriteString(w, renderProjectionText(projection))
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown output format: %s", format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write projection").
			WithCause(err)
	}
	return nil
}

func renderProjectionText(projection types.Projection) string {
	var b strings.Builder
	if projection.Mode == types.ProjectionModeGrouped {
		for _, group := range projection.Groups {
			b.WriteString(groupHeadingStyle.Render(group.Key))
			b.WriteString("\n")
			for _, member := range group.Members {
				b.WriteString("  - ")
				b.WriteString(displayName(member, ""))
				b.WriteString("\n")
			}
		}
		return b.String()
	}
	for _, row := range projection.Rows {
		b.WriteString(rowIndexStyle.Render(fmt.Sprint(row.Index)))
		b.WriteString("  ")
		b.WriteString(displayName(row.Record.Attributes, row.Record.EntityID))
		b.WriteString("\n")
	}
	return b.String()
}

// displayName picks the label a row is shown with.
func displayName(attributes types.Attributes, fallback string) string {
	for _, key := range []string{"friendly_name", "name"} {
		if value, ok := attributes.Lookup(key); ok {
			if text, ok := value.(string); ok && text != "" {
				return text
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "?"
}

var _ ports.ProjectionWriterPort = ProjectionWriterAdapter{}
