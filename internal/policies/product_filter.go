package policies

import (
	"reflect"
	"strconv"
	"strings"

	"shoppinglist-card/internal/types"
)

// ShoppingListQuantityAttribute returns the per-list quantity attribute name
// the integration exposes for a shopping list.
func ShoppingListQuantityAttribute(listID string) string {
	return "list_" + strings.TrimSpace(listID) + "_qty"
}

// SelectProducts keeps the records whose entity id carries the product marker.
func SelectProducts(states types.States) []types.StateRecord {
	products := make([]types.StateRecord, 0, len(states))
	for _, record := range states {
		if strings.Contains(record.EntityID, types.ProductMarker) {
			products = append(products, record)
		}
	}
	return products
}

// OnShoppingList keeps the records with a positive quantity on listID.
func OnShoppingList(records []types.StateRecord, listID string) []types.StateRecord {
	attribute := ShoppingListQuantityAttribute(listID)
	return keep(records, func(record types.StateRecord) bool {
		value, _ := record.Attributes.Lookup(attribute)
		return positiveQuantity(value)
	})
}

// ApplyExclude drops every record whose attribute equals any listed value.
// An absent attribute never equals a listed null.
func ApplyExclude(records []types.StateRecord, rules types.AttributeRules) []types.StateRecord {
	for _, rule := range rules {
		for _, excluded := range rule.Values {
			records = keep(records, func(record types.StateRecord) bool {
				value, ok := record.Attributes.Lookup(rule.Attribute)
				return !ok || !StrictEqual(value, excluded)
			})
		}
	}
	return records
}

// ApplyInclude narrows records once per listed value, so several distinct
// values under one attribute keep only records equal to all of them.
// IncludeConflicts reports such rules.
func ApplyInclude(records []types.StateRecord, rules types.AttributeRules) []types.StateRecord {
	for _, rule := range rules {
		for _, required := range rule.Values {
			records = keep(records, func(record types.StateRecord) bool {
				value, ok := record.Attributes.Lookup(rule.Attribute)
				return ok && StrictEqual(value, required)
			})
		}
	}
	return records
}

func keep(records []types.StateRecord, pred func(types.StateRecord) bool) []types.StateRecord {
	out := make([]types.StateRecord, 0, len(records))
	for _, record := range records {
		if pred(record) {
			out = append(out, record)
		}
	}
	return out
}

// StrictEqual reports whether two attribute values are identical without
// type coercion. Numbers compare by value across Go numeric kinds, so an
// int decoded from a card file equals the same number decoded from JSON.
func StrictEqual(a any, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := NumberValue(a); ok {
		bn, ok := NumberValue(b)
		return ok && an == bn
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}

// NumberValue returns the float value of any Go numeric kind.
func NumberValue(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func positiveQuantity(value any) bool {
	if n, ok := NumberValue(value); ok {
		return n > 0
	}
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && n > 0
	case bool:
		return v
	default:
		return false
	}
}
