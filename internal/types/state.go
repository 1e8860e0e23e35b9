package types

import "sort"

// ProductMarker is the entity id fragment carried by every product entity
// exported by the Grocy shopping list integration.
const ProductMarker = "shopping_list_with_grocy_product_v"

// Attributes holds the attribute map of a single entity. Values are strings,
// integers, floats, booleans or nil as decoded from the host snapshot.
type Attributes map[string]any

// Lookup returns the attribute value and whether it was present.
func (a Attributes) Lookup(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	value, ok := a[name]
	return value, ok
}

type StateRecord struct {
	EntityID   string     `yaml:"entity_id" json:"entity_id"`
	State      string     `yaml:"state,omitempty" json:"state,omitempty"`
	Attributes Attributes `yaml:"attributes" json:"attributes"`
}

// States is the host state snapshot in iteration order.
type States []StateRecord

// StatesFromMap builds a snapshot from a keyed mapping. Go maps carry no
// order, so records are ordered by ascending entity id.
func StatesFromMap(input map[string]StateRecord) States {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	states := make(States, 0, len(keys))
	for _, key := range keys {
		record := input[key]
		record.EntityID = key
		states = append(states, record)
	}
	return states
}
