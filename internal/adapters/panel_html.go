package adapters

import (
	"html/template"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

var htmlPanelTemplate = template.Must(template.New("panel").Parse(`<style>
  ha-card.slwg-error {
    border-left: 4px solid var(--error-color, #db4437);
    padding: 12px 16px;
  }
  .slwg-title { font-weight: 600; margin-bottom: 6px; }
  .slwg-sub   { color: var(--secondary-text-color); margin-bottom: 8px; }
  .slwg-code  {
    font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, "Liberation Mono", monospace;
  }
  .slwg-list { line-height: 1.4; }
</style>

<ha-card class="slwg-error" lang="{{.Messages.Lang}}">
  <div class="slwg-title">{{.Messages.Title}}</div>
  <div class="slwg-sub">{{.Messages.Subtitle}}</div>

  <div class="slwg-list">
{{- range .Missing}}
    <div>• <span class="slwg-code">&lt;{{.Tag}}&gt;</span> — {{if .Link}}<a href="{{.Link}}" target="_blank" rel="noopener">{{.Label}}</a>{{else}}{{.Label}}{{end}}</div>
{{- end}}
  </div>

  <br />
  <div>
    {{.Messages.Hint}}
  </div>
</ha-card>
`))

// HTMLPanelAdapter renders the error panel as card markup.
type HTMLPanelAdapter struct{}

func NewHTMLPanelAdapter() HTMLPanelAdapter {
	return HTMLPanelAdapter{}
}

func (a HTMLPanelAdapter) RenderPanel(w io.Writer, missing []types.CardDependency, lang string) error {
	if len(missing) == 0 {
		return nil
	}
	data := struct {
		Messages panelMessages
		Missing  []types.CardDependency
	}{
		Messages: messagesFor(lang),
		Missing:  missing,
	}
	if err := htmlPanelTemplate.Execute(w, data); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render html panel").
			WithCause(err)
	}
	return nil
}

var _ ports.PanelPort = HTMLPanelAdapter{}
