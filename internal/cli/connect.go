package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vietddude/keyctl/internal/core/domain"
)

var connectCmd = &cobra.Command{
	Use:   "connect [id]",
	Short: "Connect the daemon to a keyboard (any keyboard if no id is given)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runConnect,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the daemon from its current keyboard",
	Run:   runDisconnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
}

func runConnect(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	var res domain.ConnectResult
	var err error
	if len(args) == 1 {
		id, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			slog.Error("Invalid keyboard id", "arg", args[0])
			os.Exit(1)
		}
		res, err = client.Connect(ctx, id)
	} else {
		res, err = client.ConnectAny(ctx)
	}

	if err != nil {
		slog.Error("Connect failed", "error", err)
		os.Exit(1)
	}

	// Not connected without an error means the daemon had no keyboard
	// to attach; that is a normal outcome, not a failure.
	if res.Connected {
		fmt.Println("connected")
	} else {
		fmt.Println("no keyboard available")
	}
}

func runDisconnect(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	if err := client.Disconnect(ctx); err != nil {
		slog.Error("Disconnect failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("disconnected")
}
