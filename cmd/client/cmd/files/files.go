package files

import (
	"github.com/spf13/cobra"
)

// FilesCmd groups file operations: upload, list, download, rm.
var FilesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded files",
}

func init() {
	FilesCmd.AddCommand(UploadCmd)
	FilesCmd.AddCommand(ListCmd)
	FilesCmd.AddCommand(DownloadCmd)
	FilesCmd.AddCommand(RmCmd)
}
