package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

func TestRenderClassificationCard(t *testing.T) {
	out := RenderClassificationCard(model.WardrobeItem{
		Name:              "Vintage Silk Blouse",
		Era:               model.Era1940s,
		Confidence:        94,
		Glyph:             "👚",
		Description:       "Structured shoulders",
		HistoricalContext: "Film noir staple",
	})

	assert.Contains(t, out, "1940s Era Detected")
	assert.Contains(t, out, "94% confidence match")
	assert.Contains(t, out, "Vintage Silk Blouse")
	assert.Contains(t, out, "Structured shoulders")
	assert.Contains(t, out, "Film noir staple")
}

func TestRenderLookCard(t *testing.T) {
	card := model.LookCard{
		Profile: model.StyleProfile{
			Era:         model.Era1960s,
			Name:        "Mod Revolution",
			Description: "Bold geometric patterns.",
			Items: []model.CatalogItem{
				{Name: "Shift Dress", Price: 75, Provenance: model.ProvenanceOwned, Glyph: "👗"},
				{Name: "Go-Go Boots", Price: 135, Provenance: model.ProvenancePurchasable, Glyph: "👢"},
			},
		},
		OwnedCount:       1,
		PurchasableCount: 1,
	}

	out := RenderLookCard(card)
	assert.Contains(t, out, "Mod Revolution")
	assert.Contains(t, out, "Using 1 items from your wardrobe")
	assert.Contains(t, out, "1 RackSavant pieces")
	assert.Contains(t, out, "Shift Dress")
	assert.Contains(t, out, "from your closet")
	assert.Contains(t, out, "$135")
}

func TestRenderSuggestion(t *testing.T) {
	classification := model.SuggestionEntry{
		Kind:           model.SuggestionClassification,
		Classification: &model.ClassificationCard{Item: model.WardrobeItem{Name: "Slip Dress", Era: model.Era1990s}},
	}
	assert.Contains(t, RenderSuggestion(classification), "Slip Dress")

	look := model.SuggestionEntry{
		Kind: model.SuggestionLook,
		Look: &model.LookCard{Profile: model.StyleProfile{Era: model.Era1950s, Name: "Grace Kelly Elegance"}},
	}
	assert.Contains(t, RenderSuggestion(look), "Grace Kelly Elegance")

	assert.Empty(t, RenderSuggestion(model.SuggestionEntry{}))
}
