package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppinglist-card/internal/types"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := NewRegistryFileAdapter().LoadRegistry("../../fixtures/registry.yaml")
	require.NoError(t, err)

	version, ok := registry.Lookup("button-card")
	assert.True(t, ok)
	assert.Equal(t, "4.1.2", version)

	version, ok = registry.Lookup("bootstrap-grid-card")
	assert.True(t, ok)
	assert.Empty(t, version)

	_, ok = registry.Lookup("collapsable-cards")
	assert.False(t, ok)
}

func TestLoadRegistryMissing(t *testing.T) {
	_, err := NewRegistryFileAdapter().LoadRegistry("../../fixtures/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestElementRegistrySkipsBlankTags(t *testing.T) {
	registry := NewElementRegistry([]types.RegisteredElement{
		{Tag: "  layout-card ", Version: " 2.4.5 "},
		{Tag: "   "},
	})
	version, ok := registry.Lookup("layout-card")
	assert.True(t, ok)
	assert.Equal(t, "2.4.5", version)
	_, ok = registry.Lookup("")
	assert.False(t, ok)
}
