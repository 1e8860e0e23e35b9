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

// StateFileAdapter reads host state snapshots. Both shapes the host emits
// are accepted: the REST list of state objects and the frontend mapping
// keyed by entity id. JSON is read through the YAML decoder, and document
// order is kept in either shape.
type StateFileAdapter struct{}

func NewStateFileAdapter() StateFileAdapter {
	return StateFileAdapter{}
}

func (a StateFileAdapter) LoadStates(path string) (types.States, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("states file not found").
			WithCause(err)
	}
	states, err := parseStates(data)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse states file").
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("entities", len(states)).Msg("states loaded")
	return states, nil
}

func parseStates(data []byte) (types.States, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return types.States{}, nil
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		states := make(types.States, 0, len(root.Content))
		for _, item := range root.Content {
			var record types.StateRecord
			if err := item.Decode(&record); err != nil {
				return nil, err
			}
			if strings.TrimSpace(record.EntityID) == "" {
				return nil, fmt.Errorf("line %d: state without entity_id", item.Line)
			}
			states = append(states, record)
		}
		return states, nil
	case yaml.MappingNode:
		states := make(types.States, 0, len(root.Content)/2)
		seen := map[string]struct{}{}
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i].Value
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("line %d: duplicate entity %s", root.Content[i].Line, key)
			}
			seen[key] = struct{}{}
			var record types.StateRecord
			if err := root.Content[i+1].Decode(&record); err != nil {
				return nil, err
			}
			record.EntityID = key
			states = append(states, record)
		}
		return states, nil
	default:
		return nil, fmt.Errorf("line %d: states must be a list or a mapping", root.Line)
	}
}

var _ ports.StateSourcePort = StateFileAdapter{}
