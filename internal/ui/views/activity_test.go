package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainfeed/internal/domain"
)

func TestAbbreviateAddress(t *testing.T) {
	assert.Equal(t, "0x1234...5678", AbbreviateAddress("0x1234567890abcdef1234567890abcdef12345678"))
	// Short strings are returned unchanged
	assert.Equal(t, "0x1234", AbbreviateAddress("0x1234"))
	assert.Equal(t, "", AbbreviateAddress(""))
}

func TestHostname(t *testing.T) {
	assert.Equal(t, "etherscan.io", Hostname("https://etherscan.io/tx/0xdeadbeef"))
	assert.Equal(t, "polygonscan.com", Hostname("https://polygonscan.com/tx/0x1?x=y"))
	// Unparseable input falls back to the raw string
	assert.Equal(t, "not a url", Hostname("not a url"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "activity", Pluralize(1, "activity", "activities"))
	assert.Equal(t, "activities", Pluralize(0, "activity", "activities"))
	assert.Equal(t, "activities", Pluralize(2, "activity", "activities"))
}

func TestCountHeader(t *testing.T) {
	assert.Equal(t, "0xABC has 1 activity", CountHeader("0xABC", 1))
	assert.Equal(t, "0xABC has 2 activities", CountHeader("0xABC", 2))
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(1700000000)
	want := time.Unix(1700000000, 0).Local().Format("Jan 2, 2006 15:04:05")
	assert.Equal(t, want, got)
}

func TestRenderActivityHeadline(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	a := domain.Activity{
		ID:        "a",
		Type:      "transfer",
		Platform:  "Uniswap",
		Network:   "ethereum",
		Tag:       "exchange",
		Timestamp: 1700000000,
	}

	out := r.Render(a, false)

	assert.Contains(t, out, "transfer on Uniswap")
	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "#exchange")
}

func TestRenderActivityWithoutPlatformOrTag(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	a := domain.Activity{ID: "a", Type: "mint", Network: "base", Timestamp: 1700000000}

	out := r.Render(a, false)

	assert.Contains(t, out, "mint")
	assert.NotContains(t, out, " on ")
	assert.NotContains(t, out, "#")
}

func TestRenderActivityWithoutActionsIsSafe(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	a := domain.Activity{ID: "a", Type: "transfer", Network: "ethereum", Timestamp: 1700000000}

	out := r.Render(a, false)

	require.NotEmpty(t, out)
	assert.NotContains(t, out, "From:")
	assert.NotContains(t, out, "View on")
}

func TestRenderActionDetails(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	a := domain.Activity{
		ID:        "a",
		Type:      "transfer",
		Network:   "ethereum",
		Timestamp: 1700000000,
		Actions: []domain.Action{
			{
				Type:        "transfer",
				From:        "0x1111111111111111111111111111111111111111",
				To:          "0x2222222222222222222222222222222222222222",
				Metadata:    map[string]any{"value": "1.5 ETH"},
				RelatedURLs: []string{"https://etherscan.io/tx/0xdeadbeef"},
			},
			{
				// Only the first action is rendered
				Type: "burn",
				From: "0x3333333333333333333333333333333333333333",
			},
		},
	}

	out := r.Render(a, false)

	assert.Contains(t, out, "1.5 ETH")
	assert.Contains(t, out, "From: 0x1111...1111")
	assert.Contains(t, out, "To: 0x2222...2222")
	assert.Contains(t, out, "View on etherscan.io")
	assert.NotContains(t, out, "burn")
}

func TestRenderActionWithoutURLOmitsLink(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	a := domain.Activity{
		ID:        "a",
		Type:      "transfer",
		Network:   "ethereum",
		Timestamp: 1700000000,
		Actions:   []domain.Action{{Type: "transfer", From: "0x1111111111111111111111111111111111111111"}},
	}

	out := r.Render(a, false)

	assert.Contains(t, out, "From:")
	assert.NotContains(t, out, "View on")
}

func TestRenderFullAddresses(t *testing.T) {
	r := NewActivityRenderer(NewStyles())
	from := "0x1111111111111111111111111111111111111111"
	a := domain.Activity{
		ID:      "a",
		Type:    "transfer",
		Network: "ethereum",
		Actions: []domain.Action{{From: from}},
	}

	out := r.Render(a, true)

	assert.Contains(t, out, "From: "+from)
}

func TestRenderActivityListJoinsWithBlankLine(t *testing.T) {
	r := NewRenderer()
	vs := ViewState{
		Activities: []domain.Activity{
			{ID: "a", Type: "transfer", Network: "ethereum", Timestamp: 1700000000},
			{ID: "b", Type: "swap", Network: "polygon", Timestamp: 1700000100},
		},
	}

	out := r.RenderActivityList(vs)

	assert.Equal(t, 1, strings.Count(out, "\n\n")) // one separator between the two single-line items
	assert.Contains(t, out, "transfer")
	assert.Contains(t, out, "swap")
}
