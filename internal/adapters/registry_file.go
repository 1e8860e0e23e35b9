package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"shoppinglist-card/internal/ports"
	"shoppinglist-card/internal/types"
)

// ElementRegistry is an in-memory snapshot of registered custom elements.
type ElementRegistry struct {
	versions map[string]string
}

func NewElementRegistry(elements []types.RegisteredElement) ElementRegistry {
	versions := make(map[string]string, len(elements))
	for _, element := range elements {
		tag := strings.TrimSpace(element.Tag)
		if tag == "" {
			continue
		}
		versions[tag] = strings.TrimSpace(element.Version)
	}
	return ElementRegistry{versions: versions}
}

func (r ElementRegistry) Lookup(tag string) (string, bool) {
	version, ok := r.versions[tag]
	return version, ok
}

type RegistryFileAdapter struct{}

func NewRegistryFileAdapter() RegistryFileAdapter {
	return RegistryFileAdapter{}
}

func (a RegistryFileAdapter) LoadRegistry(path string) (ports.ElementRegistryPort, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry snapshot not found").
			WithCause(err)
	}
	var snapshot types.RegistrySnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse registry snapshot %s", path)).
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("elements", len(snapshot.Elements)).Msg("registry loaded")
	return NewElementRegistry(snapshot.Elements), nil
}

var (
	_ ports.ElementRegistryPort = ElementRegistry{}
	_ ports.RegistrySourcePort  = RegistryFileAdapter{}
)
