package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RackSavant/celebrityRecs/internal/tui"
)

func closetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closet",
		Short: "Open the interactive digital closet",
		Long: `Open the interactive closet interface: browse the era timeline,
upload wardrobe photos for era detection, and compose Hollywood looks.

Examples:
  racksavant closet             # Open the closet with the demo item
  racksavant closet --no-seed   # Start with an empty closet`,
		RunE: runCloset,
	}

	cmd.Flags().Bool("no-seed", false, "Skip the first-run demonstration item")
	_ = viper.BindPFlag("closet.no_seed", cmd.Flags().Lookup("no-seed"))

	return cmd
}

func runCloset(_ *cobra.Command, _ []string) error {
	ctrl, err := newSessionController()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctrl.Close(); closeErr != nil {
			slog.Error("Failed to close session", "error", closeErr)
		}
	}()

	seed := !viper.GetBool("closet.no_seed")
	program := tea.NewProgram(tui.New(ctrl, seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("closet interface failed: %w", err)
	}

	return nil
}
