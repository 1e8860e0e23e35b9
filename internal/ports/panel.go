package ports

import (
	"io"

	"shoppinglist-card/internal/types"
)

// PanelPort renders the in-card error panel listing missing dependencies.
type PanelPort interface {
	RenderPanel(w io.Writer, missing []types.CardDependency, lang string) error
}
