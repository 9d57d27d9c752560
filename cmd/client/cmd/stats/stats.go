package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var analytics bool

// StatsCmd prints storage usage, or the analytics breakdown with -a.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show storage usage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if analytics {
			return printAnalytics(ctx, app)
		}
		return printStorage(ctx, app)
	},
}

func printStorage(ctx context.Context, app *client.App) error {
	s, err := app.API().StorageStats(ctx)
	if err != nil {
		return err
	}

	color.Cyan("Storage usage")
	fmt.Printf("  files: %d (%d bytes)\n", s.FileCount, s.TotalBytes)
	fmt.Printf("  notes: %d, texts: %d\n", s.NoteCount, s.TextCount)
	fmt.Printf("  quota: %d bytes, used %.2f%%\n", s.QuotaBytes, s.UsedPercent)

	if len(s.ByCategory) > 0 {
		fmt.Println("  by category:")
		for name, c := range s.ByCategory {
			fmt.Printf("    %s: %d files, %d bytes\n", name, c.Count, c.Bytes)
		}
	}
	return nil
}

func printAnalytics(ctx context.Context, app *client.App) error {
	a, err := app.API().Analytics(ctx)
	if err != nil {
		return err
	}

	color.Cyan("Uploads, last 7 days")
	for _, d := range a.UploadsPerDay {
		fmt.Printf("  %s: %d\n", d.Date, d.Count)
	}

	if len(a.ByCategory) > 0 {
		fmt.Println("By category:")
		for name, c := range a.ByCategory {
			fmt.Printf("  %s: %d files, %d bytes\n", name, c.Count, c.Bytes)
		}
	}
	return nil
}

func init() {
	StatsCmd.Flags().BoolVarP(&analytics, "analytics", "a", false, "show the analytics breakdown")
}
