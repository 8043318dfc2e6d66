package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/RackSavant/celebrityRecs/internal/cli"
	"github.com/RackSavant/celebrityRecs/internal/config"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify one wardrobe photo",
		Long: `Upload a single wardrobe photo to the classification backend and
print the detected era card.

Examples:
  racksavant classify ~/photos/blouse.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path := config.ExpandPath(args[0])
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	ctrl, err := newSessionController()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctrl.Close(); closeErr != nil {
			slog.Error("Failed to close session", "error", closeErr)
		}
	}()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[yellow][bold]Analyzing your piece...[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go spinUntil(bar, done)

	item, err := ctrl.BeginUpload(ctx, image, filepath.Base(path))
	close(done)
	_ = bar.Finish()

	if err != nil {
		return err
	}
	ctrl.Acknowledge()

	fmt.Println(cli.RenderClassificationCard(item))

	count, err := ctrl.WardrobeCount(ctx)
	if err == nil {
		fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("%d items in your digital closet", count)))
	}
	return nil
}

// spinUntil keeps the indeterminate spinner moving while the upload is
// in flight.
func spinUntil(bar *progressbar.ProgressBar, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
