package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var keyboardsCmd = &cobra.Command{
	Use:   "keyboards",
	Short: "List keyboards the daemon knows about",
	Run:   runKeyboards,
}

func init() {
	rootCmd.AddCommand(keyboardsCmd)
}

func runKeyboards(cmd *cobra.Command, args []string) {
	cfg := setup()

	ctx := context.Background()
	client, _ := dial(ctx, cfg)
	defer func() {
		_ = client.Close()
	}()

	keyboards, err := client.Keyboards(ctx)
	if err != nil {
		slog.Error("Keyboard discovery failed", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tPATH\tCONNECTED")
	for _, kb := range keyboards {
		connected := "no"
		if kb.IsConnected {
			connected = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", kb.ID, kb.FriendlyName, kb.Path, connected)
	}
	_ = w.Flush()
}
