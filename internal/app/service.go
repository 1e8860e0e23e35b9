package app

import (
	"shoppinglist-card/internal/adapters"
	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

type Service struct {
	States     ports.StateSourcePort
	Cards      ports.CardConfigPort
	Registries ports.RegistrySourcePort
	Writer     ports.ProjectionWriterPort
	Panels     map[types.PanelFormat]ports.PanelPort
	Required   []types.CardDependency
}

func NewService() Service {
	return Service{
		States:     adapters.NewStateFileAdapter(),
		Cards:      adapters.NewCardConfigAdapter(),
		Registries: adapters.NewRegistryFileAdapter(),
		Writer:     adapters.NewProjectionWriterAdapter(),
		Panels: map[types.PanelFormat]ports.PanelPort{
			types.PanelFormatText: adapters.NewTextPanelAdapter(),
			types.PanelFormatHTML: adapters.NewHTMLPanelAdapter(),
		},
		Required: types.RequiredCards,
	}
}
