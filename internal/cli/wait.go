package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"

	"github.com/vietddude/keyctl/internal/control"
	"github.com/vietddude/keyctl/internal/infra/rpc"
)

var waitTimeout time.Duration

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait until the daemon is reachable",
	Long:  `Polls the daemon's availability with exponential backoff until it answers or the timeout expires. Useful in scripts that start keymapd and keyctl together.`,
	Run:   runWait,
}

func init() {
	waitCmd.Flags().DurationVar(&waitTimeout, "timeout", 30*time.Second, "how long to keep trying")
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()

	// The retry wraps both the dial and the probe: before the daemon is
	// up, either one can be the failing step.
	backoff := retry.WithCappedDuration(2*time.Second, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ch, err := rpc.NewGRPCChannel(ctx, cfg.Daemon.Address, cfg.Daemon.TLS, cfg.Timeouts.Dial)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() {
			_ = ch.Close()
		}()

		prober := control.NewProber(ch, cfg.Timeouts.Probe)
		if _, err := prober.ProbeStatus(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.Error("keymapd did not become reachable", "timeout", waitTimeout, "error", err)
		os.Exit(1)
	}

	slog.Info("keymapd is reachable", "address", cfg.Daemon.Address)
}
