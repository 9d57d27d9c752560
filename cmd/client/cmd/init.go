package cmd

import (
	"cloudvault/cmd/client/cmd/auth"
	"cloudvault/cmd/client/cmd/files"
	"cloudvault/cmd/client/cmd/notes"
	"cloudvault/cmd/client/cmd/stats"
	"cloudvault/cmd/client/cmd/texts"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(files.FilesCmd)
	rootCmd.AddCommand(notes.NotesCmd)
	rootCmd.AddCommand(texts.TextsCmd)
	rootCmd.AddCommand(stats.StatsCmd)
}
