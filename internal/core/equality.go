package core

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"shoppinglist-card/internal/policies"
)

// DeepEqual compares two decoded values structurally. Numbers compare by
// value regardless of the Go kind the decoder picked, and nil and empty
// collections are distinct, as they are in the host state.
func DeepEqual(a any, b any) bool {
	return cmp.Equal(a, b, numericComparer)
}

// ProjectionsEqual reports whether two projections would render the same.
func ProjectionsEqual(a any, b any) bool {
	return cmp.Equal(a, b, numericComparer, cmpopts.EquateEmpty())
}

var numericComparer = cmp.FilterValues(func(x any, y any) bool {
	_, xok := policies.NumberValue(x)
	_, yok := policies.NumberValue(y)
	return xok && yok
}, cmp.Comparer(func(x any, y any) bool {
	return policies.StrictEqual(x, y)
}))
