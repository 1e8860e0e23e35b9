package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

type CardConfigAdapter struct{}

func NewCardConfigAdapter() CardConfigAdapter {
	return CardConfigAdapter{}
}

// LoadCard reads a card configuration. An empty path yields the zero
// configuration: no filters, no sort and no grouping.
func (a CardConfigAdapter) LoadCard(path string) (types.CardConfig, error) {
	if path == "" {
		return types.CardConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CardConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("card config not found").
			WithCause(err)
	}
	var card types.CardConfig
	if err := yaml.Unmarshal(data, &card); err != nil {
		return types.CardConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse card config yaml").
			WithCause(err)
	}
	return card, nil
}

var _ ports.CardConfigPort = CardConfigAdapter{}
