package ports

import "shoppinglist-card/internal/types"

// StateSourcePort loads a host state snapshot.
type StateSourcePort interface {
	LoadStates(path string) (types.States, error)
}
