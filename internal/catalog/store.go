// Package catalog provides the read-only era catalog store backing look
// generation. The catalog is an embedded table loaded and validated once
// at startup; a table that fails validation is a fatal startup error.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

//go:embed catalog.yaml
var catalogTable []byte

// catalogFile mirrors the embedded YAML layout.
type catalogFile struct {
	Eras []profileRecord `yaml:"eras" validate:"required,min=1,dive"`
}

type profileRecord struct {
	Era         string       `yaml:"era" validate:"required"`
	Name        string       `yaml:"name" validate:"required"`
	Description string       `yaml:"description" validate:"required"`
	Items       []itemRecord `yaml:"items" validate:"required,min=1,dive"`
}

type itemRecord struct {
	Name       string  `yaml:"name" validate:"required"`
	Provenance string  `yaml:"provenance" validate:"required,oneof=owned purchasable"`
	Glyph      string  `yaml:"glyph" validate:"required"`
	Price      float64 `yaml:"price" validate:"gte=0"`
}

// Store is the read-only mapping from era to style profile.
type Store struct {
	profiles map[model.Era]model.StyleProfile
}

// Load parses and validates the embedded catalog table.
func Load() (*Store, error) {
	return load(catalogTable)
}

func load(raw []byte) (*Store, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	profiles := make(map[model.Era]model.StyleProfile, len(file.Eras))
	for _, rec := range file.Eras {
		era := model.Era(rec.Era)
		if !era.Valid() {
			return nil, fmt.Errorf("%w: catalog names era %q outside the fixed set", common.ErrInvalidCatalog, rec.Era)
		}
		if _, dup := profiles[era]; dup {
			return nil, fmt.Errorf("%w: duplicate profile for era %s", common.ErrInvalidCatalog, era)
		}

		items := make([]model.CatalogItem, len(rec.Items))
		for i, it := range rec.Items {
			items[i] = model.CatalogItem{
				Name:       it.Name,
				Price:      it.Price,
				Provenance: model.Provenance(it.Provenance),
				Glyph:      it.Glyph,
			}
		}

		profiles[era] = model.StyleProfile{
			Era:         era,
			Name:        rec.Name,
			Description: rec.Description,
			Items:       items,
		}
	}

	// Every era in the fixed set must have exactly one profile.
	for _, era := range model.Eras() {
		if _, ok := profiles[era]; !ok {
			return nil, fmt.Errorf("%w: no profile for era %s", common.ErrInvalidCatalog, era)
		}
	}

	return &Store{profiles: profiles}, nil
}

// GetProfile returns the style profile for an era. The returned profile
// holds a defensive copy of the item list so callers cannot mutate the
// catalog.
func (s *Store) GetProfile(era model.Era) (model.StyleProfile, error) {
	profile, ok := s.profiles[era]
	if !ok {
		return model.StyleProfile{}, fmt.Errorf("%w: %s", common.ErrUnknownEra, era)
	}

	items := make([]model.CatalogItem, len(profile.Items))
	copy(items, profile.Items)
	profile.Items = items
	return profile, nil
}
