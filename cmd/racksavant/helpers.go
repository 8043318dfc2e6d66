package main

import (
	"fmt"
	"log/slog"

	"github.com/RackSavant/celebrityRecs/internal/catalog"
	"github.com/RackSavant/celebrityRecs/internal/classify"
	"github.com/RackSavant/celebrityRecs/internal/config"
	"github.com/RackSavant/celebrityRecs/internal/model"
	"github.com/RackSavant/celebrityRecs/internal/session"
	"github.com/RackSavant/celebrityRecs/internal/storage"
	"github.com/RackSavant/celebrityRecs/internal/suggest"
)

// newSessionController wires up a full styling session: validated era
// catalog, ephemeral in-memory closet, and the configured classification
// backend. A catalog that fails validation aborts startup.
func newSessionController() (*session.Controller, error) {
	store, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load era catalog: %w", err)
	}

	inventory, err := storage.NewSQLiteInventory(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open wardrobe inventory: %w", err)
	}

	classifier, err := classify.NewHTTPClient(config.LoadClassifierConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create classification client: %w", err)
	}

	notify := func(item model.CatalogItem) {
		slog.Info("purchase requested, redirecting to checkout",
			"item", item.Name,
			"price", item.Price)
	}

	return session.New(inventory, classifier, suggest.New(store), notify), nil
}
