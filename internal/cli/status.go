package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the daemon's status",
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	st, err := client.Status(ctx)
	if err != nil {
		slog.Error("Status query failed", "error", err)
		os.Exit(1)
	}

	keyboard := "-"
	connected := "no"
	if st.ConnectedKeyboard != nil {
		keyboard = st.ConnectedKeyboard.FriendlyName
		if st.ConnectedKeyboard.IsConnected {
			connected = "yes"
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "DAEMON\tKEYBOARD\tCONNECTED")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", st.DaemonVersion, keyboard, connected)
	_ = w.Flush()
}
