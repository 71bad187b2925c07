/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Uploads a local file.",
	Long: `Uploads a local file to the server and lists your files afterwards.
The server rejects files larger than 10MB.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, _ := terminalUsecase(cmd.Context(), map[string]string{
			domain.ElementFileInput: args[0],
		})
		defer uc.Wait()

		return reported(uc.Uploader.SubmitUpload(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
