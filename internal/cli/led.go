package cli

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/keyctl/internal/core/domain"
)

var ledSustain time.Duration

var ledCmd = &cobra.Command{
	Use:   "led",
	Short: "Control keyboard LEDs",
}

var ledSetCmd = &cobra.Command{
	Use:   "set <index> <r> <g> <b>",
	Short: "Color a single LED",
	Args:  cobra.ExactArgs(4),
	Run:   runLedSet,
}

var ledAllCmd = &cobra.Command{
	Use:   "all <r> <g> <b>",
	Short: "Color the whole board",
	Args:  cobra.ExactArgs(3),
	Run:   runLedAll,
}

var ledStatusCmd = &cobra.Command{
	Use:   "status <index> on|off",
	Short: "Switch a status LED on or off",
	Args:  cobra.ExactArgs(2),
	Run:   runLedStatus,
}

var ledRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore all LEDs to off",
	Run:   runLedRestore,
}

func init() {
	ledCmd.PersistentFlags().DurationVar(&ledSustain, "sustain", 0, "how long the daemon holds the color (0 = until changed)")
	ledCmd.AddCommand(ledSetCmd)
	ledCmd.AddCommand(ledAllCmd)
	ledCmd.AddCommand(ledStatusCmd)
	ledCmd.AddCommand(ledRestoreCmd)
	rootCmd.AddCommand(ledCmd)
}

func parseIndex(arg string) int {
	index, err := strconv.Atoi(arg)
	if err != nil {
		slog.Error("Invalid LED index", "arg", arg)
		os.Exit(1)
	}
	return index
}

func parseColor(args []string) domain.Color {
	channels := make([]uint8, 3)
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			slog.Error("Invalid color channel, expected 0-255", "arg", arg)
			os.Exit(1)
		}
		channels[i] = uint8(v)
	}
	return domain.Color{Red: channels[0], Green: channels[1], Blue: channels[2]}
}

func runLedSet(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetLed(ctx, parseIndex(args[0]), parseColor(args[1:]), ledSustain); err != nil {
		slog.Error("SetLed failed", "error", err)
		os.Exit(1)
	}
}

func runLedAll(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetAllLeds(ctx, parseColor(args), ledSustain); err != nil {
		slog.Error("SetAllLeds failed", "error", err)
		os.Exit(1)
	}
}

func runLedStatus(cmd *cobra.Command, args []string) {
	cfg := setup()

	var on bool
	switch args[1] {
	case "on":
		on = true
	case "off":
		on = false
	default:
		slog.Error("Expected on or off", "arg", args[1])
		os.Exit(1)
	}

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetStatusLed(ctx, parseIndex(args[0]), on, ledSustain); err != nil {
		slog.Error("SetStatusLed failed", "error", err)
		os.Exit(1)
	}
}

func runLedRestore(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.RestoreLeds(ctx); err != nil {
		slog.Error("RestoreLeds failed", "error", err)
		os.Exit(1)
	}
}
