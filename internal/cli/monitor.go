package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vietddude/keyctl/internal/control"
	"github.com/vietddude/keyctl/internal/infra/rpc"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch daemon availability and serve health/metrics endpoints",
	Run:   runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := rpc.NewGRPCChannel(ctx, cfg.Daemon.Address, cfg.Daemon.TLS, cfg.Timeouts.Dial)
	if err != nil {
		slog.Error("Failed to reach keymapd", "address", cfg.Daemon.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = ch.Close()
	}()

	monitor := control.NewMonitor(
		control.NewProber(ch, cfg.Timeouts.Probe),
		cfg.Monitor.Port,
		cfg.Monitor.Interval,
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("Received signal, shutting down...", "signal", sig)
		cancel()
	}()

	slog.Info("Monitor started", "address", cfg.Daemon.Address, "port", cfg.Monitor.Port)
	if err := monitor.Run(ctx); err != nil {
		slog.Error("Monitor stopped with error", "error", err)
		os.Exit(1)
	}
}
