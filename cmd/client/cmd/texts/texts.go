package texts

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var (
	title   string
	content string
)

// TextsCmd groups text snippet operations: add, list, rm.
var TextsCmd = &cobra.Command{
	Use:   "texts",
	Short: "Manage text snippets",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a text snippet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		text, err := app.API().CreateText(ctx, title, content)
		if err != nil {
			return err
		}

		color.Green("✓ Text saved: %s", text.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List text snippets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		list, err := app.API().ListTexts(cmd.Context())
		if err != nil {
			return err
		}

		if list.Total == 0 {
			fmt.Println("No texts found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
		for _, t := range list.Texts {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, t.Title, t.UpdatedAt)
		}
		return w.Flush()
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a text snippet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.API().DeleteText(ctx, args[0]); err != nil {
			return err
		}

		color.Green("✓ Text deleted")
		return nil
	},
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func init() {
	addCmd.Flags().StringVar(&title, "title", "", "snippet title")
	addCmd.Flags().StringVar(&content, "content", "", "snippet body")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("content")

	TextsCmd.AddCommand(addCmd)
	TextsCmd.AddCommand(listCmd)
	TextsCmd.AddCommand(rmCmd)
}
