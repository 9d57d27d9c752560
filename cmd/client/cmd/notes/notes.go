package notes

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

// NotesCmd groups note operations: add, list, edit, rm.
var NotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		note, err := app.API().CreateNote(ctx, title, content)
		if err != nil {
			return err
		}

		color.Green("✓ Note saved: %s", note.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		list, err := app.API().ListNotes(cmd.Context())
		if err != nil {
			return err
		}

		if list.Total == 0 {
			fmt.Println("No notes found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
		for _, n := range list.Notes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, n.Title, n.UpdatedAt)
		}
		return w.Flush()
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		note, err := app.API().UpdateNote(ctx, args[0], title, content)
		if err != nil {
			return err
		}

		color.Green("✓ Note updated: %s", note.ID)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.API().DeleteNote(ctx, args[0]); err != nil {
			return err
		}

		color.Green("✓ Note deleted")
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
	addCmd.Flags().StringVar(&title, "title", "", "note title")
	addCmd.Flags().StringVar(&content, "content", "", "note body")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("content")

	editCmd.Flags().StringVar(&title, "title", "", "note title")
	editCmd.Flags().StringVar(&content, "content", "", "note body")
	_ = editCmd.MarkFlagRequired("title")
	_ = editCmd.MarkFlagRequired("content")

	NotesCmd.AddCommand(addCmd)
	NotesCmd.AddCommand(listCmd)
	NotesCmd.AddCommand(editCmd)
	NotesCmd.AddCommand(rmCmd)
}
