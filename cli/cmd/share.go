/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/spf13/cobra"
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share <file_id> <username>",
	Short: "Shares a file with another user.",
	Long: `Shares one of your files with another user. Without arguments it lists the
files you can share.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
		}
		return nil
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return FileIDCompletionFunc(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			uc, _ := terminalUsecase(cmd.Context(), map[string]string{domain.ElementFileSelect: ""})
			if err := uc.Share.LoadChoices(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "Error loading files: %v\n", err)
				return reported(err)
			}
			return nil
		}

		id, err := parseFileID(args[0])
		if err != nil {
			return err
		}
		uc, _ := terminalUsecase(cmd.Context(), map[string]string{
			domain.ElementSelectedFileID: strconv.FormatInt(id, 10),
			domain.ElementShareUsername:  args[1],
		})
		defer uc.Wait()

		return reported(uc.Share.SubmitShare(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
