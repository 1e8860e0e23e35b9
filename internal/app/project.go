package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/core"
	"shoppinglist-card/internal/types"
)

func (s Service) Project(ctx context.Context, req ProjectRequest) (ProjectResult, error) {
	states, err := s.loadStates(req.StatesPath)
	if err != nil {
		return ProjectResult{}, err
	}
	card, err := s.loadCard(req)
	if err != nil {
		return ProjectResult{}, err
	}
	projection, err := s.project(ctx, states, card, req)
	if err != nil {
		return ProjectResult{}, err
	}
	return ProjectResult{Projection: projection, Products: projection.Len()}, nil
}

func (s Service) loadStates(path string) (types.States, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("states path is required")
	}
	return s.States.LoadStates(path)
}

func (s Service) loadCard(req ProjectRequest) (types.CardConfig, error) {
	card, err := s.Cards.LoadCard(strings.TrimSpace(req.CardPath))
	if err != nil {
		return types.CardConfig{}, err
	}
	if strings.TrimSpace(req.GroupBy) != "" {
		card.GroupBy = req.GroupBy
	}
	if len(req.SortBy) > 0 {
		card.SortBy = req.SortBy
	}
	if _, err := validateCard(card); err != nil {
		return types.CardConfig{}, err
	}
	return card, nil
}

func (s Service) project(ctx context.Context, states types.States, card types.CardConfig, req ProjectRequest) (types.Projection, error) {
	sorter, err := core.NewSorter(req.Locale)
	if err != nil {
		return types.Projection{}, err
	}
	projection, err := core.NewProjector(sorter).Project(ctx, states, card, req.ShoppingList)
	if err != nil {
		return types.Projection{}, err
	}
	log.Ctx(ctx).Debug().
		Str("mode", string(projection.Mode)).
		Int("entities", len(states)).
		Int("products", projection.Len()).
		Msg("projection ready")
	return projection, nil
}
