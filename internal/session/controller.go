// Package session implements the controller orchestrating a single styling
// session: era selection, the upload lifecycle, and suggestion regeneration.
//
// A controller is the single writer for all session state. The only
// suspending operation is BeginUpload, which holds the session's one
// upload slot for the duration of the classification call; a second
// upload while one is in flight is rejected, not queued.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
	"github.com/RackSavant/celebrityRecs/internal/suggest"
)

// Controller owns the state of one styling session.
type Controller struct {
	inventory   Inventory
	classifier  Classifier
	generator   *suggest.Generator
	notify      Notifier
	currentEra  model.Era
	phase       model.UploadPhase
	suggestions []model.SuggestionEntry
	mu          sync.Mutex
	closed      bool
}

// New creates a session controller in its initial state: first era
// current, upload phase idle, empty closet, no suggestions.
func New(inventory Inventory, classifier Classifier, generator *suggest.Generator, notify Notifier) *Controller {
	if notify == nil {
		notify = func(model.CatalogItem) {}
	}
	return &Controller{
		inventory:  inventory,
		classifier: classifier,
		generator:  generator,
		notify:     notify,
		currentEra: model.DefaultEra,
		phase:      model.PhaseIdle,
	}
}

// CurrentEra returns the era the session is currently styling for.
func (c *Controller) CurrentEra() model.Era {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentEra
}

// Phase returns the current upload phase.
func (c *Controller) Phase() model.UploadPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Suggestions returns a snapshot of the active suggestion entries.
func (c *Controller) Suggestions() []model.SuggestionEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.SuggestionEntry, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// SelectEra switches the current era. Selection alone does not regenerate
// suggestions; the user requests a look separately.
func (c *Controller) SelectEra(era model.Era) error {
	if !era.Valid() {
		return fmt.Errorf("%w: %s", common.ErrUnknownEra, era)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return common.ErrSessionClosed
	}
	c.currentEra = era
	return nil
}

// BeginUpload runs the upload lifecycle for one image: it claims the
// session's single upload slot, invokes the classifier, and on success
// adds the item to the closet, prepends its classification card to the
// suggestions, and follows the detected era. On failure every piece of
// prior state is left untouched. A classification that completes after
// the session closed is discarded.
func (c *Controller) BeginUpload(ctx context.Context, image []byte, filename string) (model.WardrobeItem, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.WardrobeItem{}, common.ErrSessionClosed
	}
	if c.phase == model.PhaseUploading {
		c.mu.Unlock()
		return model.WardrobeItem{}, common.ErrUploadInFlight
	}
	c.phase = model.PhaseUploading
	c.mu.Unlock()

	result, err := c.classifier.Classify(ctx, image, filename)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		// Late-arriving response after teardown; drop it on the floor.
		slog.Debug("discarding classification result for closed session")
		return model.WardrobeItem{}, common.ErrSessionClosed
	}

	if err != nil {
		c.phase = model.PhaseFailed
		slog.Warn("classification failed", "error", err)
		return model.WardrobeItem{}, common.NewUserError("Upload failed", err)
	}

	item, err := c.inventory.InsertFront(ctx, model.WardrobeItem{
		Name:              result.Name,
		Era:               result.DetectedEra,
		Confidence:        result.Confidence,
		Glyph:             result.Glyph,
		Description:       result.Description,
		HistoricalContext: result.HistoricalContext,
		ImageURL:          result.ImageURL,
	})
	if err != nil {
		c.phase = model.PhaseFailed
		return model.WardrobeItem{}, common.NewUserError("Upload failed", err)
	}

	card := c.generator.FromClassification(item)
	c.suggestions = append([]model.SuggestionEntry{card}, c.suggestions...)
	c.currentEra = result.DetectedEra
	c.phase = model.PhaseSucceeded

	slog.Info("wardrobe item classified",
		"name", item.Name,
		"era", item.Era,
		"confidence", item.Confidence)
	return item, nil
}

// Acknowledge returns the session to idle after the user has seen the
// outcome of an upload. A no-op in any non-terminal phase.
func (c *Controller) Acknowledge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == model.PhaseSucceeded || c.phase == model.PhaseFailed {
		c.phase = model.PhaseIdle
	}
}

// RequestLook composes the look for the current era and replaces the
// active suggestions wholesale. Rejected while an upload is in flight.
func (c *Controller) RequestLook() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return common.ErrSessionClosed
	}
	if c.phase == model.PhaseUploading {
		return common.ErrUploadInFlight
	}

	entry, err := c.generator.Look(c.currentEra)
	if err != nil {
		return err
	}

	c.suggestions = []model.SuggestionEntry{entry}
	return nil
}

// Purchase triggers the checkout stub for a purchasable catalog item.
// Items already in the user's closet are rejected. No session state is
// altered either way.
func (c *Controller) Purchase(item model.CatalogItem) error {
	if item.Provenance != model.ProvenancePurchasable {
		return fmt.Errorf("%w: %s", common.ErrNotPurchasable, item.Name)
	}
	c.notify(item)
	return nil
}

// WardrobeCount returns the number of items in the user's closet.
func (c *Controller) WardrobeCount(ctx context.Context) (int, error) {
	return c.inventory.Count(ctx)
}

// Wardrobe returns the closet contents, most recent first.
func (c *Controller) Wardrobe(ctx context.Context) ([]model.WardrobeItem, error) {
	return c.inventory.All(ctx)
}

// Seed installs the bootstrap demonstration item shown on first run: one
// synthetic classified piece, surfaced both in the closet and as the
// initial suggestion card.
func (c *Controller) Seed(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return common.ErrSessionClosed
	}
	c.mu.Unlock()

	item, err := c.inventory.InsertFront(ctx, model.WardrobeItem{
		Name:              "Vintage Silk Blouse",
		Era:               model.Era1940s,
		Confidence:        94,
		Glyph:             "👚",
		Description:       "Classic button-down with structured shoulders and flowing silhouette",
		HistoricalContext: "Reminiscent of Lauren Bacall's sophisticated style in film noir classics",
	})
	if err != nil {
		return fmt.Errorf("failed to seed wardrobe: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestions = []model.SuggestionEntry{c.generator.FromClassification(item)}
	return nil
}

// Close tears the session down. Any in-flight classification result is
// discarded on arrival, and the closet is released.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	return c.inventory.Close()
}
