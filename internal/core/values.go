package core

import (
	"fmt"
	"math"
	"strconv"

	"shoppinglist-card/internal/policies"
)

// truthy reports whether a group attribute value is usable as a heading.
func truthy(value any) bool {
	if value == nil {
		return false
	}
	if n, ok := policies.NumberValue(value); ok {
		return n != 0 && !math.IsNaN(n)
	}
	switch v := value.(type) {
	case string:
		return v != ""
	case bool:
		return v
	default:
		return true
	}
}

func groupKey(value any) string {
	if n, ok := policies.NumberValue(value); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
