package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/charmbracelet/lipgloss"

	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

var (
	errorColor = lipgloss.Color("#db4437")
	mutedColor = lipgloss.Color("#727272")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(errorColor).
			Padding(0, 2)
	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	panelSubStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// TextPanelAdapter renders the error panel for a terminal.
type TextPanelAdapter struct{}

func NewTextPanelAdapter() TextPanelAdapter {
	return TextPanelAdapter{}
}

func (a TextPanelAdapter) RenderPanel(w io.Writer, missing []types.CardDependency, lang string) error {
	if len(missing) == 0 {
		return nil
	}
	messages := messagesFor(lang)
	lines := []string{
		panelTitleStyle.Render(messages.Title),
		panelSubStyle.Render(messages.Subtitle),
		"",
	}
	for _, dep := range missing {
		line := fmt.Sprintf("• <%s> — %s", dep.Tag, dep.Label)
		if dep.Link != "" {
			line += " (" + dep.Link + ")"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", messages.Hint)

	if _, err := fmt.Fprintln(w, panelStyle.Render(strings.Join(lines, "\n"))); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write panel").
			WithCause(err)
	}
	return nil
}

var _ ports.PanelPort = TextPanelAdapter{}
