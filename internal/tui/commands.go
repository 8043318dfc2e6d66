package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lookDelay is the cosmetic latency behind "Creating your Hollywood
// look..."; the look itself is computed synchronously.
const lookDelay = 1200 * time.Millisecond

// uploadCmd reads the selected image and runs the upload lifecycle.
func (m Model) uploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		image, err := os.ReadFile(path)
		if err != nil {
			return classificationDoneMsg{err: err}
		}

		item, err := m.session.BeginUpload(context.Background(), image, filepath.Base(path))
		return classificationDoneMsg{item: item, err: err}
	}
}

// generateLookCmd regenerates suggestions for the current era after the
// cosmetic delay.
func (m Model) generateLookCmd() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(lookDelay)
		return lookReadyMsg{err: m.session.RequestLook()}
	}
}

// refreshCountCmd fetches the closet size for the header.
func (m Model) refreshCountCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.session.WardrobeCount(context.Background())
		return wardrobeCountMsg{count: count, err: err}
	}
}

// seedCmd installs the first-run demonstration item.
func (m Model) seedCmd() tea.Cmd {
	return func() tea.Msg {
		return seededMsg{err: m.session.Seed(context.Background())}
	}
}
