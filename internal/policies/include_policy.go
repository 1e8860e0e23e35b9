package policies

import (
	"fmt"

	"shoppinglist-card/internal/types"
)

// IncludeConflicts describes include rules that can never match because
// they list more than one distinct value under the same attribute.
func IncludeConflicts(rules types.AttributeRules) []string {
	var conflicts []string
	for _, rule := range rules {
		distinct := make([]any, 0, len(rule.Values))
		for _, value := range rule.Values {
			seen := false
			for _, existing := range distinct {
				if StrictEqual(existing, value) {
					seen = true
					break
				}
			}
			if !seen {
				distinct = append(distinct, value)
			}
		}
		if len(distinct) > 1 {
			conflicts = append(conflicts, fmt.Sprintf(
				"include.%s lists %d distinct values; each narrows the result, so only records equal to all of them are kept",
				rule.Attribute, len(distinct)))
		}
	}
	return conflicts
}
