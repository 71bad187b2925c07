/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <file_id>",
	Short: "Downloads a file.",
	Long: `Downloads one of your files, or a file shared with you, into the download
directory. The file keeps the name the server gives it.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: FileIDCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseFileID(args[0])
		if err != nil {
			return err
		}

		uc, nav := terminalUsecase(cmd.Context(), nil)
		defer uc.Wait()

		uc.Actions.Download(id)
		return reported(nav.Err())
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
