package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppinglist-card/internal/types"
)

func TestLoadCard(t *testing.T) {
	card, err := NewCardConfigAdapter().LoadCard("../../fixtures/card.yaml")
	require.NoError(t, err)

	assert.Equal(t, "custom:shopping-list-with-grocy-card", card.Type)
	assert.Equal(t, "1", card.ShoppingListID)
	assert.Equal(t, []string{"name"}, card.SortBy)
	assert.Empty(t, card.GroupBy)
	assert.Equal(t, types.AttributeRules{
		{Attribute: "location", Values: types.AttributeValues{"Cellar"}},
	}, card.Exclude)
	assert.Nil(t, card.Include)
}

func TestLoadCardRulesKeepOrderAndAcceptScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	content := "include:\n  location: Fridge\n  group: [Dairy, 3]\nexclude:\n  product_id: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	card, err := NewCardConfigAdapter().LoadCard(path)
	require.NoError(t, err)
	assert.Equal(t, types.AttributeRules{
		{Attribute: "location", Values: types.AttributeValues{"Fridge"}},
		{Attribute: "group", Values: types.AttributeValues{"Dairy", 3}},
	}, card.Include)
	assert.Equal(t, types.AttributeRules{
		{Attribute: "product_id", Values: types.AttributeValues{7}},
	}, card.Exclude)
}

func TestLoadCardNullRuleValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exclude:\n  location: ~\n"), 0o644))

	card, err := NewCardConfigAdapter().LoadCard(path)
	require.NoError(t, err)
	assert.Equal(t, types.AttributeRules{
		{Attribute: "location", Values: types.AttributeValues{nil}},
	}, card.Exclude)
}

func TestLoadCardEmptyPath(t *testing.T) {
	card, err := NewCardConfigAdapter().LoadCard("")
	require.NoError(t, err)
	assert.Equal(t, types.CardConfig{}, card)
}

func TestLoadCardErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewCardConfigAdapter().LoadCard(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exclude: [a, b]\n"), 0o644))
	_, err = NewCardConfigAdapter().LoadCard(path)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
