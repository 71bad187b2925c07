/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configKeys = []string{
	serverURLKey,
	sessionCookieKey,
	downloadDirKey,
	logLevelKey,
	logFormatKey,
	logFileKey,
	toastDurationKey,
	redirectDelayKey,
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [key [value]]",
	Short: "Gets or sets client configuration.",
	Long: `Manages configuration for the sharesh client.
If called without arguments, it displays every setting.
If called with a key, it displays that setting.
If called with a key and a value, it stores the value in the config file.`,
	Args: cobra.MaximumNArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return configKeys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	// The config command must work even when the stored server url is broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			for _, key := range configKeys {
				fmt.Printf("%-15s %s\n", key, displayValue(key))
			}
			return nil
		case 1:
			if !slices.Contains(configKeys, args[0]) {
				return fmt.Errorf("unknown config key %q", args[0])
			}
			fmt.Println(viper.GetString(args[0]))
			return nil
		}

		key, value := args[0], args[1]
		if !slices.Contains(configKeys, key) {
			return fmt.Errorf("unknown config key %q", key)
		}
		viper.Set(key, value)
		if err := writeConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config file: %v\n", err)
			return reported(err)
		}
		fmt.Printf("%s set to: %s\n", key, displayValue(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func displayValue(key string) string {
	v := viper.GetString(key)
	if key == sessionCookieKey && len(v) > 8 {
		return v[:4] + "…" + v[len(v)-4:]
	}
	return v
}

func writeConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || !errors.As(err, &notFound) {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(home, ".sharesh.yaml"))
}
