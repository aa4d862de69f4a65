package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/keyctl/internal/control"
	"github.com/vietddude/keyctl/internal/core/config"
	"github.com/vietddude/keyctl/internal/infra/rpc"
)

var (
	cfgPath string
	isDebug bool
	address string
)

var rootCmd = &cobra.Command{
	Use:   "keyctl",
	Short: "Control client for the keymapd keyboard daemon",
	Long:  `keyctl talks to a running keymapd daemon over gRPC: connect keyboards, switch layers, drive LEDs and adjust brightness.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "daemon address (overrides config)")
}

// setup loads configuration and initializes logging. A missing config
// file falls back to defaults so keyctl works with zero setup.
func setup() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			stylelog.InitDefault()
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	stylelog.InitDefault(&tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})

	if address != "" {
		cfg.Daemon.Address = address
	}
	return cfg
}

// dial opens the channel and builds the session client over it.
func dial(ctx context.Context, cfg *config.AppConfig) (*control.Client, *rpc.GRPCChannel) {
	ch, err := rpc.NewGRPCChannel(ctx, cfg.Daemon.Address, cfg.Daemon.TLS, cfg.Timeouts.Dial)
	if err != nil {
		slog.Error("Failed to reach keymapd", "address", cfg.Daemon.Address, "error", err)
		os.Exit(1)
	}

	client := control.New(ch,
		control.WithConnectTimeout(cfg.Timeouts.Connect),
		control.WithProbeTimeout(cfg.Timeouts.Probe),
	)
	return client, ch
}
