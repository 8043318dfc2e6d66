package model

// Provenance indicates where a catalog item comes from when composing a look.
type Provenance string

const (
	// ProvenanceOwned marks a placeholder for something already in the user's closet.
	ProvenanceOwned Provenance = "owned"
	// ProvenancePurchasable marks a RackSavant piece offered for purchase.
	ProvenancePurchasable Provenance = "purchasable"
)

// Valid reports whether p is a recognized provenance tag.
func (p Provenance) Valid() bool {
	return p == ProvenanceOwned || p == ProvenancePurchasable
}

// CatalogItem is a named, priced garment or accessory belonging to one
// era's style profile. Immutable after catalog load.
type CatalogItem struct {
	Name       string
	Glyph      string
	Provenance Provenance
	Price      float64
}

// StyleProfile is the curated look for one era: a display name, a short
// description, and an ordered list of catalog items.
type StyleProfile struct {
	Era         Era
	Name        string
	Description string
	Items       []CatalogItem
}
