package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RackSavant/celebrityRecs/internal/cli"
	"github.com/RackSavant/celebrityRecs/internal/common"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

func lookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "look [era]",
		Short: "Compose the Hollywood look for an era",
		Long: `Compose and print the curated look for an era, mixing closet
placeholders with purchasable RackSavant pieces.

Examples:
  racksavant look          # Look for the default era (1940s)
  racksavant look 1970s    # Studio 54 glamour`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLook,
	}
}

func runLook(_ *cobra.Command, args []string) error {
	ctrl, err := newSessionController()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctrl.Close(); closeErr != nil {
			slog.Error("Failed to close session", "error", closeErr)
		}
	}()

	if len(args) == 1 {
		if err := ctrl.SelectEra(model.Era(args[0])); err != nil {
			return common.NewUserError(
				fmt.Sprintf("Unknown era %q - try one of %v", args[0], model.Eras()), err)
		}
	}

	if err := ctrl.RequestLook(); err != nil {
		return err
	}

	for _, entry := range ctrl.Suggestions() {
		fmt.Println(cli.RenderSuggestion(entry))
	}
	return nil
}
