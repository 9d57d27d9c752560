package files

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var cached bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded files",
	Long: `Lists files newest first. With --cached the listing comes from
the local cache and works offline.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		files, err := app.ListFiles(cmd.Context(), cached)
		if err != nil {
			return err
		}

		if len(files) == 0 {
			fmt.Println("No files found")
			return nil
		}

		if cached {
			color.Yellow("(cached listing)")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tSIZE\tUPLOADED")
		for _, f := range files {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", f.ID, f.OriginalName, f.FileType, f.FileSize, f.UploadedAt)
		}
		return w.Flush()
	},
}

func init() {
	ListCmd.Flags().BoolVar(&cached, "cached", false, "use the local cache instead of the server")
}
