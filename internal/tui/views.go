package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RackSavant/celebrityRecs/internal/cli"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.GoldColor)

	chipStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			Padding(0, 1)

	activeChipStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(cli.GoldColor).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.GoldColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)
)

// View renders the closet interface.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(logoStyle.Render("RackSavant"))
	b.WriteString(cli.SubtitleStyle.Render("  Hollywood Fashion, Your Closet"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d items in your digital closet\n\n", m.count))

	b.WriteString(m.renderTimeline())
	b.WriteString("\n\n")

	switch {
	case m.picking:
		b.WriteString("Pick a photo of your piece:\n\n")
		b.WriteString(m.filepicker.View())
	case m.busy:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.busyLabel)
	default:
		b.WriteString(m.renderSuggestions())
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(cli.ErrorStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(cli.OwnedStyle.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ era · u upload · g get styling · ↑/↓ item · enter add to look · q quit"))
	return b.String()
}

func (m Model) renderTimeline() string {
	chips := make([]string, 0, len(model.Eras()))
	for i, era := range model.Eras() {
		if i == m.eraIdx {
			chips = append(chips, activeChipStyle.Render(string(era)))
		} else {
			chips = append(chips, chipStyle.Render(string(era)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderSuggestions() string {
	suggestions := m.session.Suggestions()
	if len(suggestions) == 0 {
		return cli.SubtitleStyle.Render("Upload a wardrobe photo or press g for a curated look.")
	}

	cards := make([]string, 0, len(suggestions))
	for _, entry := range suggestions {
		if entry.Kind == model.SuggestionLook && entry.Look != nil {
			cards = append(cards, m.renderLook(*entry.Look))
			continue
		}
		cards = append(cards, cli.RenderSuggestion(entry))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderLook renders a look card with the item cursor, so purchasable
// pieces can be added to the look with enter.
func (m Model) renderLook(card model.LookCard) string {
	var b strings.Builder

	b.WriteString(cli.BadgeStyle.Render(string(card.Profile.Era)))
	b.WriteString("\n")
	b.WriteString(cli.TitleStyle.Render(card.Profile.Name))
	b.WriteString("\n")
	b.WriteString(cli.SubtitleStyle.Render(card.Profile.Description))
	b.WriteString("\n\n")
	b.WriteString(cli.OwnedStyle.Render(fmt.Sprintf("✓ Using %d items from your wardrobe", card.OwnedCount)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("+ %d RackSavant pieces to complete the look\n", card.PurchasableCount))

	for i, item := range card.Profile.Items {
		marker := "  "
		if i == m.itemCursor {
			marker = cursorStyle.Render("▶ ")
		}

		line := fmt.Sprintf("\n%s%s %s  $%.0f", marker, item.Glyph, item.Name, item.Price)
		if item.Provenance == model.ProvenanceOwned {
			line += cli.OwnedStyle.Render("  (from your closet)")
		} else {
			line += cli.SubtitleStyle.Render("  [enter: add to look]")
		}
		b.WriteString(line)
	}

	return cli.CardStyle.Render(b.String())
}
