// Package suggest produces the displayable suggestion entries: a card for
// one classification result, or a full look composed from the era catalog.
package suggest

import (
	"fmt"

	"github.com/RackSavant/celebrityRecs/internal/catalog"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

// Generator composes suggestion entries from the era catalog. It never
// mutates the catalog or the wardrobe inventory.
type Generator struct {
	catalog *catalog.Store
}

// New creates a generator over the given catalog store.
func New(store *catalog.Store) *Generator {
	return &Generator{catalog: store}
}

// FromClassification wraps a classification result into a displayable card.
func (g *Generator) FromClassification(item model.WardrobeItem) model.SuggestionEntry {
	return model.SuggestionEntry{
		Kind:           model.SuggestionClassification,
		Classification: &model.ClassificationCard{Item: item},
	}
}

// Look composes the curated look for an era. The owned/purchasable
// partition is computed fresh from the catalog profile on every call, so
// the same era always yields a structurally identical card.
func (g *Generator) Look(era model.Era) (model.SuggestionEntry, error) {
	profile, err := g.catalog.GetProfile(era)
	if err != nil {
		return model.SuggestionEntry{}, fmt.Errorf("failed to compose look: %w", err)
	}

	card := model.LookCard{Profile: profile}
	for _, item := range profile.Items {
		switch item.Provenance {
		case model.ProvenanceOwned:
			card.OwnedCount++
		case model.ProvenancePurchasable:
			card.PurchasableCount++
		}
	}

	return model.SuggestionEntry{
		Kind: model.SuggestionLook,
		Look: &card,
	}, nil
}
