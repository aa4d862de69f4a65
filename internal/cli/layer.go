package cli

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var layerCmd = &cobra.Command{
	Use:   "layer",
	Short: "Control keyboard layers",
}

var layerSetCmd = &cobra.Command{
	Use:   "set <n>",
	Short: "Activate a layer",
	Args:  cobra.ExactArgs(1),
	Run:   runLayerSet,
}

var layerUnsetCmd = &cobra.Command{
	Use:   "unset <n>",
	Short: "Deactivate a layer",
	Args:  cobra.ExactArgs(1),
	Run:   runLayerUnset,
}

func init() {
	layerCmd.AddCommand(layerSetCmd)
	layerCmd.AddCommand(layerUnsetCmd)
	rootCmd.AddCommand(layerCmd)
}

func parseLayer(arg string) int {
	layer, err := strconv.Atoi(arg)
	if err != nil {
		slog.Error("Invalid layer number", "arg", arg)
		os.Exit(1)
	}
	return layer
}

func runLayerSet(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetLayer(ctx, parseLayer(args[0])); err != nil {
		slog.Error("SetLayer failed", "error", err)
		os.Exit(1)
	}
}

func runLayerUnset(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.UnsetLayer(ctx, parseLayer(args[0])); err != nil {
		slog.Error("UnsetLayer failed", "error", err)
		os.Exit(1)
	}
}
