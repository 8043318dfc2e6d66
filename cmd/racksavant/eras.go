package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RackSavant/celebrityRecs/internal/catalog"
	"github.com/RackSavant/celebrityRecs/internal/cli"
	"github.com/RackSavant/celebrityRecs/internal/model"
)

func erasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eras",
		Short: "List the supported fashion eras",
		RunE:  runEras,
	}
}

func runEras(_ *cobra.Command, _ []string) error {
	store, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load era catalog: %w", err)
	}

	for _, era := range model.Eras() {
		profile, err := store.GetProfile(era)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", cli.TitleStyle.Render(string(era)), profile.Name)
		fmt.Printf("     %s\n", cli.SubtitleStyle.Render(profile.Description))
	}
	return nil
}
