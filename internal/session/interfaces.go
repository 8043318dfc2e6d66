package session

import (
	"context"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

// Classifier submits an image to the external classification backend.
type Classifier interface {
	Classify(ctx context.Context, image []byte, filename string) (model.ClassificationResult, error)
}

// Inventory is the session's wardrobe store. It only ever grows; items
// are never mutated or removed within a session.
type Inventory interface {
	InsertFront(ctx context.Context, item model.WardrobeItem) (model.WardrobeItem, error)
	Count(ctx context.Context) (int, error)
	All(ctx context.Context) ([]model.WardrobeItem, error)
	Close() error
}

// Notifier receives the purchase stub side effect. The real checkout
// system is out of scope; implementations typically notify the user and
// simulate a redirect.
type Notifier func(item model.CatalogItem)
