package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/core"
	"shoppinglist-card/internal/policies"
)

// Refresh projects two snapshots with the same card and reports whether the
// rendered output would differ, so a caller can skip redrawing. When the
// product records themselves are unchanged the previous snapshot is not
// projected at all.
func (s Service) Refresh(ctx context.Context, req RefreshRequest) (RefreshResult, error) {
	previousPath := strings.TrimSpace(req.PreviousStatesPath)
	if previousPath == "" {
		return RefreshResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("previous states path is required")
	}
	currentStates, err := s.loadStates(req.Project.StatesPath)
	if err != nil {
		return RefreshResult{}, err
	}
	previousStates, err := s.States.LoadStates(previousPath)
	if err != nil {
		return RefreshResult{}, err
	}
	card, err := s.loadCard(req.Project)
	if err != nil {
		return RefreshResult{}, err
	}
	current, err := s.project(ctx, currentStates, card, req.Project)
	if err != nil {
		return RefreshResult{}, err
	}

	if core.DeepEqual(policies.SelectProducts(previousStates), policies.SelectProducts(currentStates)) {
		log.Ctx(ctx).Debug().Str("previous", previousPath).Msg("product states unchanged")
		return RefreshResult{Projection: current}, nil
	}
	previous, err := s.project(ctx, previousStates, card, req.Project)
	if err != nil {
		return RefreshResult{}, err
	}
	return RefreshResult{
		StatesChanged: true,
		Changed:       !core.ProjectionsEqual(previous, current),
		Projection:    current,
	}, nil
}
