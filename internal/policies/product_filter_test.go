package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"shoppinglist-card/internal/types"
)

func entityIDs(records []types.StateRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.EntityID)
	}
	return ids
}

func TestSelectProducts(t *testing.T) {
	states := types.States{
		{EntityID: "sensor.shopping_list_with_grocy_product_v1_milk"},
		{EntityID: "sensor.grocy_stock"},
		{EntityID: "shopping_list_with_grocy_product_v12"},
		{EntityID: "sensor.shopping_list_with_grocy_product"},
	}
	got := entityIDs(SelectProducts(states))
	want := []string{"sensor.shopping_list_with_grocy_product_v1_milk", "shopping_list_with_grocy_product_v12"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected products (-want +got):\n%s", diff)
	}
}

func TestShoppingListQuantityAttribute(t *testing.T) {
	assert.Equal(t, "list_1_qty", ShoppingListQuantityAttribute("1"))
	assert.Equal(t, "list_12_qty", ShoppingListQuantityAttribute(" 12 "))
}

func TestOnShoppingList(t *testing.T) {
	records := []types.StateRecord{
		{EntityID: "a", Attributes: types.Attributes{"list_3_qty": 1}},
		{EntityID: "b", Attributes: types.Attributes{"list_3_qty": -1}},
		{EntityID: "c", Attributes: types.Attributes{"list_3_qty": " 2 "}},
		{EntityID: "d", Attributes: types.Attributes{"list_3_qty": nil}},
		{EntityID: "e"},
	}
	assert.Equal(t, []string{"a", "c"}, entityIDs(OnShoppingList(records, "3")))
}

func TestApplyExcludeAndInclude(t *testing.T) {
	records := []types.StateRecord{
		{EntityID: "milk", Attributes: types.Attributes{"location": "Fridge", "group": "Dairy"}},
		{EntityID: "cheese", Attributes: types.Attributes{"location": "Fridge", "group": "Deli"}},
		{EntityID: "bread", Attributes: types.Attributes{"location": "Pantry", "group": "Bakery"}},
	}

	excluded := ApplyExclude(records, types.AttributeRules{
		{Attribute: "group", Values: types.AttributeValues{"Deli", "Bakery"}},
	})
	assert.Equal(t, []string{"milk"}, entityIDs(excluded))

	included := ApplyInclude(records, types.AttributeRules{
		{Attribute: "location", Values: types.AttributeValues{"Fridge"}},
		{Attribute: "group", Values: types.AttributeValues{"Deli"}},
	})
	assert.Equal(t, []string{"cheese"}, entityIDs(included))

	assert.Len(t, records, 3, "input must not be modified")
	assert.Equal(t, records, ApplyInclude(records, nil))
}

func TestApplyFiltersNullValues(t *testing.T) {
	records := []types.StateRecord{
		{EntityID: "unset", Attributes: types.Attributes{"location": nil}},
		{EntityID: "absent", Attributes: types.Attributes{"group": "Dairy"}},
		{EntityID: "set", Attributes: types.Attributes{"location": "Fridge"}},
	}
	rules := types.AttributeRules{{Attribute: "location", Values: types.AttributeValues{nil}}}

	assert.Equal(t, []string{"absent", "set"}, entityIDs(ApplyExclude(records, rules)))
	assert.Equal(t, []string{"unset"}, entityIDs(ApplyInclude(records, rules)))
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{"same strings", "Fridge", "Fridge", true},
		{"different strings", "Fridge", "fridge", false},
		{"int and float", 2, 2.0, true},
		{"int64 and int", int64(7), 7, true},
		{"number and numeric string", 2, "2", false},
		{"bools", true, true, true},
		{"bool and string", true, "true", false},
		{"nil and nil", nil, nil, true},
		{"nil and empty string", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StrictEqual(tt.a, tt.b))
		})
	}
}

func TestIncludeConflicts(t *testing.T) {
	conflicts := IncludeConflicts(types.AttributeRules{
		{Attribute: "location", Values: types.AttributeValues{"Fridge", "Pantry"}},
		{Attribute: "group", Values: types.AttributeValues{"Dairy", "Dairy"}},
		{Attribute: "qty", Values: types.AttributeValues{1, 1.0}},
	})
	if assert.Len(t, conflicts, 1) {
		assert.Contains(t, conflicts[0], "include.location")
	}
}
