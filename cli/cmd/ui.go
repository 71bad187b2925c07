/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/ponyo877/sharesh/cli/adaptor/tui"
	"github.com/ponyo877/sharesh/cli/domain"
	"github.com/ponyo877/sharesh/cli/logging"
	"github.com/ponyo877/sharesh/cli/usecase"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Starts the file dashboard in a tview-based interface",
	Long: `Starts a dashboard with an upload form, your files and the files shared
with you. Select a file and press d to download, s to share or a to archive it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runDashboard(cmd.Context()); err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runDashboard(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	app := tview.NewApplication()
	page := tui.NewPage(app)

	notifier := usecase.NewToastNotifier(page, viper.GetDuration(toastDurationKey), usecase.DefaultToastFadeOut)
	nav := tui.NewNavigator(ctx, page, repo, notifier, viper.GetString(downloadDirKey))
	uc := usecase.NewUsecase(repo, page, notifier, nav, usecase.Config{
		RedirectDelay: viper.GetDuration(redirectDelayKey),
	})
	nav.SetSession(uc)

	// Outcomes are notified on the page; returned errors only go to the log.
	page.Bind(tui.Handlers{
		Upload:      func() { uc.Uploader.SubmitUpload(ctx) },
		Share:       func() { uc.Share.SubmitShare(ctx) },
		LoadChoices: func() { uc.Share.LoadChoices(ctx) },
		Refresh:     func() { uc.Files.LoadPage(ctx) },
		Action: func(action domain.Action, fileID int64) {
			if err := uc.Dispatch(ctx, action, fileID); err != nil {
				logging.S().Debugw("file action", "action", action.String(), "file_id", fileID, "error", err)
			}
		},
		Quit: func() {
			cancel()
			app.Stop()
		},
	})

	app.SetRoot(page.Root(), true).SetInputCapture(page.HandleKey)

	// Cancelling the command (SIGINT outside raw mode) also closes the dashboard.
	go func() {
		<-ctx.Done()
		app.Stop()
	}()
	go uc.Files.LoadPage(ctx)

	logging.L().Info("dashboard started")
	return app.Run()
}
