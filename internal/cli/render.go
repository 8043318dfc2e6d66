package cli

import (
	"fmt"
	"strings"

	"github.com/RackSavant/celebrityRecs/internal/model"
)

// RenderClassificationCard renders one classified wardrobe item.
func RenderClassificationCard(item model.WardrobeItem) string {
	var b strings.Builder

	b.WriteString(BadgeStyle.Render(fmt.Sprintf("%s Era Detected", item.Era)))
	b.WriteString("\n")
	if item.Confidence > 0 {
		b.WriteString(OwnedStyle.Render(fmt.Sprintf("%.0f%% confidence match", item.Confidence)))
		b.WriteString("\n")
	}

	title := item.Name
	if item.Glyph != "" {
		title = item.Glyph + " " + title
	}
	b.WriteString(TitleStyle.Render(title))

	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(item.Description))
	}
	if item.HistoricalContext != "" {
		b.WriteString("\n")
		b.WriteString(HeritageStyle.Render("✨ Hollywood Heritage: " + item.HistoricalContext))
	}
	if item.ImageURL != "" {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(item.ImageURL))
	}

	return CardStyle.Render(b.String())
}

// RenderLookCard renders a composed era look with its owned/purchasable split.
func RenderLookCard(card model.LookCard) string {
	var b strings.Builder

	b.WriteString(BadgeStyle.Render(string(card.Profile.Era)))
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render(card.Profile.Name))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(card.Profile.Description))
	b.WriteString("\n\n")
	b.WriteString(OwnedStyle.Render(fmt.Sprintf("✓ Using %d items from your wardrobe", card.OwnedCount)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("+ %d RackSavant pieces to complete the look", card.PurchasableCount))
	b.WriteString("\n")

	for _, item := range card.Profile.Items {
		line := fmt.Sprintf("\n%s %s  $%.0f", item.Glyph, item.Name, item.Price)
		if item.Provenance == model.ProvenanceOwned {
			line += OwnedStyle.Render("  (from your closet)")
		}
		b.WriteString(line)
	}

	return CardStyle.Render(b.String())
}

// RenderSuggestion renders either kind of suggestion entry.
func RenderSuggestion(entry model.SuggestionEntry) string {
	switch entry.Kind {
	case model.SuggestionClassification:
		if entry.Classification != nil {
			return RenderClassificationCard(entry.Classification.Item)
		}
	case model.SuggestionLook:
		if entry.Look != nil {
			return RenderLookCard(*entry.Look)
		}
	}
	return ""
}
