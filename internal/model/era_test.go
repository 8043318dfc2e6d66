package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEraValid(t *testing.T) {
	tests := []struct {
		name string
		era  Era
		want bool
	}{
		{name: "first era", era: Era1940s, want: true},
		{name: "last era", era: Era1990s, want: true},
		{name: "future decade", era: Era("2100s"), want: false},
		{name: "empty", era: Era(""), want: false},
		{name: "case sensitive", era: Era("1940S"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.era.Valid())
		})
	}
}

func TestErasOrderedAndValid(t *testing.T) {
	eras := Eras()
	assert.Len(t, eras, 6)
	assert.Equal(t, DefaultEra, eras[0])

	for i, era := range eras {
		assert.True(t, era.Valid(), "era %s should be valid", era)
		if i > 0 {
			assert.Less(t, eras[i-1].String(), era.String(), "eras should be in timeline order")
		}
	}
}

func TestProvenanceValid(t *testing.T) {
	assert.True(t, ProvenanceOwned.Valid())
	assert.True(t, ProvenancePurchasable.Valid())
	assert.False(t, Provenance("rental").Valid())
	assert.False(t, Provenance("").Valid())
}
