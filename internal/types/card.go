package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AttributeValues is the list of values configured under one attribute in
// an include or exclude rule. A single scalar decodes as a one-element list.
type AttributeValues []any

func (v *AttributeValues) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var values []any
		if err := node.Decode(&values); err != nil {
			return err
		}
		*v = values
		return nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return err
		}
		*v = AttributeValues{value}
		return nil
	default:
		return fmt.Errorf("line %d: attribute values must be a scalar or a list", node.Line)
	}
}

// AttributeRule is an ordered set of attribute rules. Order follows the card
// configuration so that filters apply in the order they were written.
type AttributeRule struct {
	Attribute string
	Values    AttributeValues
}

type AttributeRules []AttributeRule

func (r *AttributeRules) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attribute rules must be a mapping", node.Line)
	}
	rules := make(AttributeRules, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		valueNode := node.Content[i+1]
		values := AttributeValues{nil}
		if valueNode.ShortTag() != "!!null" {
			values = nil
			if err := valueNode.Decode(&values); err != nil {
				return err
			}
		}
		rules = append(rules, AttributeRule{
			Attribute: node.Content[i].Value,
			Values:    values,
		})
	}
	*r = rules
	return nil
}

// CardConfig is the subset of the Lovelace card configuration that drives
// product projection.
type CardConfig struct {
	Type           string         `yaml:"type,omitempty"`
	Title          string         `yaml:"title,omitempty"`
	ShoppingListID string         `yaml:"shopping_list_id,omitempty"`
	Exclude        AttributeRules `yaml:"exclude,omitempty"`
	Include        AttributeRules `yaml:"include,omitempty"`
	SortBy         []string       `yaml:"sort_by,omitempty"`
	GroupBy        string         `yaml:"group_by,omitempty"`
}
