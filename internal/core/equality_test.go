package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shoppinglist-card/internal/types"
)

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{name: "identical scalars", a: "milk", b: "milk", expected: true},
		{name: "different scalars", a: "milk", b: "eggs", expected: false},
		{name: "string and number", a: "5", b: 5, expected: false},
		{name: "int and float", a: 5, b: 5.0, expected: true},
		{
			name:     "nested maps",
			a:        map[string]any{"attributes": map[string]any{"qty": 2, "name": "Milk"}},
			b:        map[string]any{"attributes": map[string]any{"qty": 2.0, "name": "Milk"}},
			expected: true,
		},
		{
			name:     "extra key",
			a:        map[string]any{"name": "Milk"},
			b:        map[string]any{"name": "Milk", "qty": 1},
			expected: false,
		},
		{
			name:     "lists",
			a:        []any{"a", 1},
			b:        []any{"a", 1},
			expected: true,
		},
		{name: "nil and empty map", a: nil, b: map[string]any{}, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeepEqual(tt.a, tt.b))
			assert.Equal(t, tt.expected, DeepEqual(tt.b, tt.a))
		})
	}
}

func TestProjectionsEqual(t *testing.T) {
	a := types.Projection{
		Mode: types.ProjectionModeOrdered,
		Rows: []types.Row{{Index: 0, Record: product("1", types.Attributes{"name": "Milk", "list_1_qty": 2})}},
	}
	b := types.Projection{
		Mode: types.ProjectionModeOrdered,
		Rows: []types.Row{{Index: 0, Record: product("1", types.Attributes{"name": "Milk", "list_1_qty": 2.0})}},
	}
	assert.True(t, ProjectionsEqual(a, b))

	b.Rows[0].Record.Attributes["list_1_qty"] = 3
	assert.False(t, ProjectionsEqual(a, b))

	assert.True(t, ProjectionsEqual(
		types.Projection{Mode: types.ProjectionModeGrouped, Groups: []types.Group{}},
		types.Projection{Mode: types.ProjectionModeGrouped},
	))
}
