package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"shoppinglist-card/internal/policies"
	"shoppinglist-card/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	cardPath := strings.TrimSpace(req.CardPath)
	if cardPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("card config path is required")
	}
	card, err := s.Cards.LoadCard(cardPath)
	if err != nil {
		return ValidateResult{}, err
	}
	warnings, err := validateCard(card)
	if err != nil {
		return ValidateResult{}, err
	}
	for _, warning := range warnings {
		log.Ctx(ctx).Warn().Str("card", cardPath).Msg(warning)
	}
	return ValidateResult{Warnings: warnings}, nil
}

// validateCard rejects configurations the projection cannot run and
// returns warnings for ones that run but probably do not do what was meant.
func validateCard(card types.CardConfig) ([]string, error) {
	for i, field := range card.SortBy {
		if strings.TrimSpace(field) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("sort_by[%d] must not be empty", i))
		}
	}
	for _, rules := range []types.AttributeRules{card.Exclude, card.Include} {
		for _, rule := range rules {
			if strings.TrimSpace(rule.Attribute) == "" {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("filter attribute names must not be empty")
			}
		}
	}

	var warnings []string
	if card.ShoppingListID != "" && strings.TrimSpace(card.ShoppingListID) == "" {
		warnings = append(warnings, "shopping_list_id is blank; the shopping-list filter is skipped")
	}
	if card.GroupBy != "" && strings.TrimSpace(card.GroupBy) == "" {
		warnings = append(warnings, "group_by is blank; products are listed without grouping")
	}
	warnings = append(warnings, policies.IncludeConflicts(card.Include)...)
	return warnings, nil
}
