package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/types"
)

// InstallHint is shown wherever missing dependencies are reported.
const InstallHint = "Install via HACS (recommended) or add as Lovelace resources, then reload the UI."

// ElementLookup resolves a custom element tag to its registered version.
type ElementLookup func(tag string) (version string, ok bool)

// MissingDependencies returns the dependencies that are not registered, or
// whose registered version is older than the declared minimum, and logs a
// compact report for troubleshooting.
func MissingDependencies(ctx context.Context, lookup ElementLookup, deps []types.CardDependency) []types.CardDependency {
	versions := newVersionCache()
	missing := []types.CardDependency{}
	for _, dep := range deps {
		assert.NotEmpty(ctx, strings.TrimSpace(dep.Tag), "dependency tag must be set")
		version, ok := lookup(strings.TrimSpace(dep.Tag))
		if ok && versions.satisfies(strings.TrimSpace(version), strings.TrimSpace(dep.MinVersion)) {
			continue
		}
		missing = append(missing, dep)
	}
	if len(missing) == 0 {
		return missing
	}

	logger := log.Ctx(ctx)
	for _, dep := range missing {
		event := logger.Error().
			Str("tag", dep.Tag).
			Str("label", dep.Label).
			Str("link", dep.Link)
		if dep.MinVersion != "" {
			event = event.Str("min_version", dep.MinVersion)
		}
		event.Msg("missing dependency")
	}
	logger.Info().Int("missing", len(missing)).Msg(InstallHint)
	return missing
}
