package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstAction(t *testing.T) {
	a := Activity{Actions: []Action{{Type: "transfer"}, {Type: "burn"}}}
	action, ok := a.FirstAction()
	require.True(t, ok)
	assert.Equal(t, "transfer", action.Type)

	_, ok = Activity{}.FirstAction()
	assert.False(t, ok)
}

func TestFirstRelatedURL(t *testing.T) {
	ac := Action{RelatedURLs: []string{"https://etherscan.io/tx/1", "https://etherscan.io/tx/2"}}
	link, ok := ac.FirstRelatedURL()
	require.True(t, ok)
	assert.Equal(t, "https://etherscan.io/tx/1", link)

	_, ok = Action{}.FirstRelatedURL()
	assert.False(t, ok)
}

func TestMetadataValue(t *testing.T) {
	value, ok := Action{Metadata: map[string]any{"value": "1.5 ETH"}}.MetadataValue()
	require.True(t, ok)
	assert.Equal(t, "1.5 ETH", value)

	// Missing key
	_, ok = Action{Metadata: map[string]any{"symbol": "ETH"}}.MetadataValue()
	assert.False(t, ok)

	// Nil metadata
	_, ok = Action{}.MetadataValue()
	assert.False(t, ok)

	// Non-string value entries are not rendered
	_, ok = Action{Metadata: map[string]any{"value": 1.5}}.MetadataValue()
	assert.False(t, ok)
}
