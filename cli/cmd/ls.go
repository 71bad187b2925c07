/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lists your files or the files shared with you.",
	Long: `Lists the files you uploaded to the server. With --shared it lists the
files other users shared with you instead, and with --all both lists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shared, _ := cmd.Flags().GetBool("shared")
		all, _ := cmd.Flags().GetBool("all")

		uc, _ := terminalUsecase(cmd.Context(), nil)
		defer uc.Wait()

		var err error
		switch {
		case all:
			fmt.Println("My files:")
			err = uc.Files.LoadOwnFiles(cmd.Context())
			fmt.Println("\nShared with me:")
			if sharedErr := uc.Files.LoadSharedFiles(cmd.Context()); err == nil {
				err = sharedErr
			}
		case shared:
			err = uc.Files.LoadSharedFiles(cmd.Context())
		default:
			err = uc.Files.LoadOwnFiles(cmd.Context())
		}
		return reported(err)
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolP("shared", "s", false, "List the files shared with you")
	lsCmd.Flags().BoolP("all", "a", false, "List your files and the files shared with you")
}
