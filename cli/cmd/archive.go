/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:               "archive <file_id...>",
	Short:             "Archives files.",
	Long:              `Archives one or more of your files. Archived files leave your file list.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: FileIDCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, _ := terminalUsecase(cmd.Context(), nil)
		defer uc.Wait()

		var errs []error
		for _, arg := range args {
			id, err := parseFileID(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				errs = append(errs, err)
				continue
			}
			if err := uc.Actions.Archive(cmd.Context(), id); err != nil {
				errs = append(errs, err)
			}
		}
		return reported(errors.Join(errs...))
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
