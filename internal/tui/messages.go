package tui

import "github.com/RackSavant/celebrityRecs/internal/model"

// Async operation messages.
type classificationDoneMsg struct {
	err  error
	item model.WardrobeItem
}

type lookReadyMsg struct {
	err error
}

type wardrobeCountMsg struct {
	err   error
	count int
}

type seededMsg struct {
	err error
}
