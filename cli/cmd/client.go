/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ponyo877/sharesh/cli/adaptor/terminal"
	"github.com/ponyo877/sharesh/cli/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// terminalUsecase wires the usecases to stdout for a single command. fields
// are the element values the command was given on its command line.
func terminalUsecase(ctx context.Context, fields map[string]string) (*usecase.Usecase, *terminal.Navigator) {
	notifier := usecase.NewToastNotifier(terminal.NewSurface(os.Stderr), viper.GetDuration(toastDurationKey), 0)
	nav := terminal.NewNavigator(ctx, repo, notifier, viper.GetString(downloadDirKey), os.Stdout)
	uc := usecase.NewUsecase(repo, terminal.NewDocument(os.Stdout, fields), notifier, nav, usecase.Config{
		RedirectDelay: viper.GetDuration(redirectDelayKey),
	})
	nav.SetSession(uc)
	return uc, nav
}

func parseFileID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid file id %q", arg)
	}
	return id, nil
}

// FileIDCompletionFunc completes file ids with the user's own files.
func FileIDCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if repo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	files, err := repo.ListOwnFiles(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	completions := make([]string, 0, len(files))
	for _, f := range files {
		completions = append(completions, fmt.Sprintf("%d\t%s", f.ID, f.OriginalFilename))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
