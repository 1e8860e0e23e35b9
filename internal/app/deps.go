package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/core"
	"shoppinglist-card/internal/types"
)

// CheckDeps reports required cards that the host registry lacks and renders
// the error panel for them. A registry that cannot be read skips the check.
func (s Service) CheckDeps(ctx context.Context, req DepsRequest) (DepsResult, error) {
	format := req.Format
	if format == "" {
		format = types.PanelFormatText
	}
	panel, ok := s.Panels[format]
	if !ok {
		return DepsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown panel format: %s", format))
	}

	registryPath := strings.TrimSpace(req.RegistryPath)
	if registryPath == "" {
		log.Ctx(ctx).Warn().Msg("element registry not available; dependency check skipped")
		return DepsResult{Missing: []types.CardDependency{}}, nil
	}
	registry, err := s.Registries.LoadRegistry(registryPath)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("path", registryPath).
			Msg("element registry not available; dependency check skipped")
		return DepsResult{Missing: []types.CardDependency{}}, nil
	}

	missing := core.MissingDependencies(ctx, registry.Lookup, s.Required)
	if len(missing) > 0 && req.Output != nil {
		if err := panel.RenderPanel(req.Output, missing, req.Language); err != nil {
			return DepsResult{}, err
		}
	}
	return DepsResult{Missing: missing, Available: true}, nil
}
