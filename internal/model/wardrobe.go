package model

import "time"

// ClassificationResult is the normalized output of the external classifier
// for one uploaded image. Every field originates outside the process and
// has been validated by the classification client before it reaches a session.
type ClassificationResult struct {
	Name              string
	DetectedEra       Era
	Confidence        float64
	Glyph             string
	Description       string
	HistoricalContext string
	ImageURL          string
}

// WardrobeItem is a garment record in the user's digital closet. Created
// exclusively from a successful classification (or the bootstrap seed) and
// never mutated afterwards.
type WardrobeItem struct {
	CreatedAt         time.Time
	ID                string
	Name              string
	Era               Era
	Glyph             string
	Description       string
	HistoricalContext string
	ImageURL          string
	Confidence        float64
}
