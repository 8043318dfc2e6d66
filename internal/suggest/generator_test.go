package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RackSavant/celebrityRecs/internal/catalog"
	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	store, err := catalog.Load()
	require.NoError(t, err)
	return New(store)
}

func TestFromClassification(t *testing.T) {
	gen := newTestGenerator(t)

	item := model.WardrobeItem{
		ID:         "w1",
		Name:       "Shift Dress",
		Era:        model.Era1960s,
		Confidence: 87,
	}

	entry := gen.FromClassification(item)
	assert.Equal(t, model.SuggestionClassification, entry.Kind)
	require.NotNil(t, entry.Classification)
	assert.Nil(t, entry.Look)
	assert.Equal(t, item, entry.Classification.Item)
}

func TestLookPartition(t *testing.T) {
	gen := newTestGenerator(t)
	store, err := catalog.Load()
	require.NoError(t, err)

	for _, era := range model.Eras() {
		entry, err := gen.Look(era)
		require.NoError(t, err)
		assert.Equal(t, model.SuggestionLook, entry.Kind)
		require.NotNil(t, entry.Look)
		assert.Nil(t, entry.Classification)

		profile, err := store.GetProfile(era)
		require.NoError(t, err)

		wantOwned, wantPurchasable := 0, 0
		for _, item := range profile.Items {
			if item.Provenance == model.ProvenanceOwned {
				wantOwned++
			} else {
				wantPurchasable++
			}
		}

		assert.Equal(t, wantOwned, entry.Look.OwnedCount, "era %s", era)
		assert.Equal(t, wantPurchasable, entry.Look.PurchasableCount, "era %s", era)
		assert.Equal(t, len(profile.Items), entry.Look.OwnedCount+entry.Look.PurchasableCount, "era %s", era)
		assert.Equal(t, profile.Items, entry.Look.Profile.Items, "era %s keeps the full ordered item list", era)
	}
}

func TestLookIdempotent(t *testing.T) {
	gen := newTestGenerator(t)

	first, err := gen.Look(model.Era1940s)
	require.NoError(t, err)
	second, err := gen.Look(model.Era1940s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLookUnknownEra(t *testing.T) {
	gen := newTestGenerator(t)

	_, err := gen.Look(model.Era("2100s"))
	assert.ErrorIs(t, err, common.ErrUnknownEra)
}
