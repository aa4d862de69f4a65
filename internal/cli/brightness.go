package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var brightnessSteps int

var brightnessCmd = &cobra.Command{
	Use:   "brightness",
	Short: "Adjust keyboard brightness",
}

var brightnessUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Increase brightness",
	Run:   runBrightnessUp,
}

var brightnessDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Decrease brightness",
	Run:   runBrightnessDown,
}

func init() {
	brightnessCmd.PersistentFlags().IntVar(&brightnessSteps, "steps", 1, "number of brightness steps (1-255)")
	brightnessCmd.AddCommand(brightnessUpCmd)
	brightnessCmd.AddCommand(brightnessDownCmd)
	rootCmd.AddCommand(brightnessCmd)
}

func runBrightnessUp(cmd *cobra.Command, args []string) {
	adjustBrightness(true)
}

func runBrightnessDown(cmd *cobra.Command, args []string) {
	adjustBrightness(false)
}

func adjustBrightness(up bool) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	adjust := client.DecreaseBrightness
	if up {
		adjust = client.IncreaseBrightness
	}

	res, err := adjust(ctx, brightnessSteps)
	if err != nil {
		slog.Error("Brightness adjustment failed", "error", err)
		os.Exit(1)
	}

	if !res.Success {
		// The daemon stopped the run, e.g. at the brightness limit.
		fmt.Println("brightness limit reached")
	}
}
