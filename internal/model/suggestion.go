package model

// SuggestionKind discriminates the two displayable suggestion shapes.
type SuggestionKind string

const (
	// SuggestionClassification wraps one classified wardrobe item.
	SuggestionClassification SuggestionKind = "classification"
	// SuggestionLook wraps a composed era look.
	SuggestionLook SuggestionKind = "look"
)

// ClassificationCard surfaces a single classification result to the user.
type ClassificationCard struct {
	Item WardrobeItem
}

// LookCard is a composed outfit for one era: the full curated item list
// plus the partition of those items into closet placeholders and
// purchasable pieces. The partition is computed fresh on every generation.
type LookCard struct {
	Profile          StyleProfile
	OwnedCount       int
	PurchasableCount int
}

// SuggestionEntry is the displayable union held by a session. Exactly one
// of Classification or Look is set, according to Kind.
type SuggestionEntry struct {
	Classification *ClassificationCard
	Look           *LookCard
	Kind           SuggestionKind
}
