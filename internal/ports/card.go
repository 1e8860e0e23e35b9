package ports

import "shoppinglist-card/internal/types"

type CardConfigPort interface {
	LoadCard(path string) (types.CardConfig, error)
}
