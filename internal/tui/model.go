// Package tui implements the interactive digital-closet interface.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RackSavant/celebrityRecs/internal/cli"
	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
	"github.com/RackSavant/celebrityRecs/internal/session"
)

// Model is the root bubbletea model for the closet interface.
type Model struct {
	session    *session.Controller
	notice     string
	errMsg     string
	busyLabel  string
	keys       KeyMap
	filepicker filepicker.Model
	spinner    spinner.Model
	eraIdx     int
	itemCursor int
	count      int
	width      int
	seed       bool
	picking    bool
	busy       bool
}

// New creates the closet model over a session controller. When seed is
// set, the first-run demonstration item is installed on startup.
func New(sess *session.Controller, seed bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.GoldColor)

	fp := filepicker.New()
	fp.AllowedTypes = []string{".jpg", ".jpeg", ".png", ".webp"}
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}

	return Model{
		session:    sess,
		keys:       DefaultKeyMap(),
		spinner:    sp,
		filepicker: fp,
		seed:       seed,
	}
}

// Init starts the initial data loads.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshCountCmd()}
	if m.seed {
		cmds = append(cmds, m.seedCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.filepicker.Height = max(msg.Height-10, 5)
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case seededMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		return m, m.refreshCountCmd()

	case wardrobeCountMsg:
		if msg.err == nil {
			m.count = msg.count
		}
		return m, nil

	case classificationDoneMsg:
		return m.handleClassificationDone(msg)

	case lookReadyMsg:
		m.busy = false
		m.itemCursor = 0
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.picking {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) handleClassificationDone(msg classificationDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.session.Acknowledge()

	if msg.err != nil {
		if common.IsRecoverable(msg.err) {
			m.errMsg = "Upload failed — try again"
		} else {
			m.errMsg = msg.err.Error()
		}
		return m, nil
	}

	m.errMsg = ""
	m.notice = fmt.Sprintf("Added %s to your closet", msg.item.Name)
	m.eraIdx = eraIndex(m.session.CurrentEra())
	return m, m.refreshCountCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.notice = ""
		m.errMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevEra):
		return m.moveEra(-1)

	case key.Matches(msg, m.keys.NextEra):
		return m.moveEra(1)

	case key.Matches(msg, m.keys.Upload):
		if m.busy {
			return m, nil
		}
		m.picking = true
		return m, m.filepicker.Init()

	case key.Matches(msg, m.keys.Style):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.busyLabel = "Creating your Hollywood look..."
		return m, tea.Batch(m.spinner.Tick, m.generateLookCmd())

	case key.Matches(msg, m.keys.Up):
		return m.moveItemCursor(-1)

	case key.Matches(msg, m.keys.Down):
		return m.moveItemCursor(1)

	case key.Matches(msg, m.keys.Purchase):
		return m.purchaseSelected()
	}

	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Dismiss) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.picking = false
		m.busy = true
		m.busyLabel = "🔍 Analyzing your piece..."
		return m, tea.Batch(m.spinner.Tick, m.uploadCmd(path))
	}
	if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
		m.errMsg = fmt.Sprintf("%s is not an image", path)
		return m, cmd
	}

	return m, cmd
}

func (m Model) moveEra(delta int) (tea.Model, tea.Cmd) {
	eras := model.Eras()
	next := m.eraIdx + delta
	if next < 0 || next >= len(eras) {
		return m, nil
	}
	if err := m.session.SelectEra(eras[next]); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.eraIdx = next
	return m, nil
}

func (m Model) moveItemCursor(delta int) (tea.Model, tea.Cmd) {
	look := m.activeLook()
	if look == nil {
		return m, nil
	}
	next := m.itemCursor + delta
	if next < 0 || next >= len(look.Profile.Items) {
		return m, nil
	}
	m.itemCursor = next
	return m, nil
}

func (m Model) purchaseSelected() (tea.Model, tea.Cmd) {
	look := m.activeLook()
	if look == nil || m.itemCursor >= len(look.Profile.Items) {
		return m, nil
	}

	item := look.Profile.Items[m.itemCursor]
	if err := m.session.Purchase(item); err != nil {
		m.errMsg = fmt.Sprintf("%s is already in your closet", item.Name)
		return m, nil
	}

	m.errMsg = ""
	m.notice = fmt.Sprintf("Purchasing %s for $%.0f! Redirecting to checkout...", item.Name, item.Price)
	return m, nil
}

// activeLook returns the look card currently on display, if any.
func (m Model) activeLook() *model.LookCard {
	for _, entry := range m.session.Suggestions() {
		if entry.Kind == model.SuggestionLook && entry.Look != nil {
			return entry.Look
		}
	}
	return nil
}

func eraIndex(era model.Era) int {
	for i, e := range model.Eras() {
		if e == era {
			return i
		}
	}
	return 0
}
