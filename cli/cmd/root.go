/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-shellwords"
	"github.com/ponyo877/sharesh/cli/logging"
	"github.com/ponyo877/sharesh/cli/repository"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	repo    *repository.Repository
)

const (
	serverURLKey     = "server_url"
	sessionCookieKey = "session_cookie"
	downloadDirKey   = "download_dir"
	logLevelKey      = "log_level"
	logFormatKey     = "log_format"
	logFileKey       = "log_file"
	toastDurationKey = "toast_duration"
	redirectDelayKey = "redirect_delay"
)

// reportedError marks a failure the user has already been notified about.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sharesh",
	Short: "Uploads, lists and shares files on a file sharing server.",
	Long: `sharesh is a client for a file sharing server. It uploads files, lists
your files and the files shared with you, and downloads, archives or shares them.

Run it without arguments for an interactive prompt, or use "sharesh ui" for the
dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output := viper.GetString(logFileKey)
		if output == "" && cmd == uiCmd {
			// tview owns the terminal while the dashboard runs.
			output = defaultLogFile()
		}
		if err := logging.Init(logging.Config{
			Level:      viper.GetString(logLevelKey),
			Format:     viper.GetString(logFormatKey),
			OutputPath: output,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		r, err := repository.NewRepository(repository.Config{
			BaseURL:       viper.GetString(serverURLKey),
			SessionCookie: viper.GetString(sessionCookieKey),
		})
		if err != nil {
			return err
		}
		repo = r
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Syncing stderr fails on some terminals; nothing to do about it.
		_ = logging.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// one‑shot
	if len(os.Args) > 1 {
		if err := run(nil); err != nil {
			os.Exit(1)
		}
		return
	}

	// REPL
	fmt.Println("entering interactive mode, type 'exit' to quit")
	for {
		line := strings.TrimSpace(prompt.Input("❯❯❯ ", completer, prompt.OptionTitle("sharesh")))
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		run(args)
	}
}

// run executes one command line. Flags are reset afterwards so that values do
// not leak into the next line of the REPL.
func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if args != nil {
		rootCmd.SetArgs(args)
	}
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd != nil {
		resetFlags(cmd.Flags())
	}
	var re reportedError
	if err != nil && !errors.As(err, &re) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

func completer(d prompt.Document) []prompt.Suggest {
	if strings.Contains(d.TextBeforeCursor(), " ") {
		return nil
	}
	suggestions := []prompt.Suggest{{Text: "exit", Description: "Leaves interactive mode."}}
	for _, c := range rootCmd.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		suggestions = append(suggestions, prompt.Suggest{Text: c.Name(), Description: c.Short})
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sharesh.log")
	}
	return filepath.Join(home, ".sharesh.log")
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sharesh.yaml)")
	rootCmd.PersistentFlags().String("server", "http://localhost:5000", "Base URL of the file sharing server")
	rootCmd.PersistentFlags().String("session-cookie", "", "Value of the server's session cookie")
	rootCmd.PersistentFlags().String("download-dir", ".", "Directory downloads are saved to")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (default stderr, or $HOME/.sharesh.log for the dashboard)")

	viper.BindPFlag(serverURLKey, rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag(sessionCookieKey, rootCmd.PersistentFlags().Lookup("session-cookie"))
	viper.BindPFlag(downloadDirKey, rootCmd.PersistentFlags().Lookup("download-dir"))
	viper.BindPFlag(logLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(logFileKey, rootCmd.PersistentFlags().Lookup("log-file"))
	viper.SetDefault(serverURLKey, "http://localhost:5000")
	viper.SetDefault(downloadDirKey, ".")
	viper.SetDefault(logLevelKey, "warn")
	viper.SetDefault(logFormatKey, "console")
	viper.SetDefault(toastDurationKey, "3s")
	viper.SetDefault(redirectDelayKey, "1200ms")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sharesh" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sharesh")
	}

	viper.SetEnvPrefix("sharesh")
	viper.AutomaticEnv() // SHARESH_SERVER_URL, SHARESH_SESSION_COOKIE, ...

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}
