package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/policies"
	"shoppinglist-card/internal/types"
)

type Projector struct {
	Sorter Sorter
}

func NewProjector(sorter Sorter) Projector {
	return Projector{Sorter: sorter}
}

// Project turns a state snapshot into display rows, or into groups when the
// card sets group_by. Inputs are never modified.
func (p Projector) Project(ctx context.Context, states types.States, cfg types.CardConfig, shoppingListMode bool) (types.Projection, error) {
	for _, field := range cfg.SortBy {
		assert.NotEmpty(ctx, strings.TrimSpace(field), "sort_by entries must be set")
	}

	products := policies.SelectProducts(states)
	if shoppingListMode && strings.TrimSpace(cfg.ShoppingListID) != "" {
		products = policies.OnShoppingList(products, cfg.ShoppingListID)
	}
	products = policies.ApplyExclude(products, cfg.Exclude)
	products = policies.ApplyInclude(products, cfg.Include)

	sorted, err := p.Sorter.Sort(products, cfg.SortBy)
	if err != nil {
		return types.Projection{}, err
	}

	groupBy := strings.TrimSpace(cfg.GroupBy)
	if groupBy != "" {
		projection := groupRecords(sorted, groupBy)
		log.Ctx(ctx).Debug().
			Str("group_by", groupBy).
			Int("groups", len(projection.Groups)).
			Int("products", projection.Len()).
			Msg("products grouped")
		return projection, nil
	}

	rows := make([]types.Row, len(sorted))
	for i, record := range sorted {
		rows[i] = types.Row{Index: i, Record: record}
	}
	log.Ctx(ctx).Debug().Int("products", len(rows)).Msg("products projected")
	return types.Projection{Mode: types.ProjectionModeOrdered, Rows: rows}, nil
}

func groupRecords(records []types.StateRecord, groupBy string) types.Projection {
	projection := types.Projection{
		Mode:    types.ProjectionModeGrouped,
		GroupBy: groupBy,
		Groups:  []types.Group{},
	}
	index := map[string]int{}
	for _, record := range records {
		value, _ := record.Attributes.Lookup(groupBy)
		if !truthy(value) {
			continue
		}
		key := groupKey(value)
		idx, ok := index[key]
		if !ok {
			idx = len(projection.Groups)
			index[key] = idx
			projection.Groups = append(projection.Groups, types.Group{Key: key})
		}
		projection.Groups[idx].Members = append(projection.Groups[idx].Members, record.Attributes)
	}
	return projection
}
