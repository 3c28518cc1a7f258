// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chatnote CLI, which saves Claude
// chat transcripts as Evernote notes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chatnote/internal/secrets"
	"github.com/pdiddy/chatnote/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// loadedEnv holds variables from the first dotenv file found at startup
// (./.env, then ~/.chatnote.env).
var loadedEnv map[string]string

var verbose bool

// rootCmd is the base command for the chatnote CLI.
var rootCmd = &cobra.Command{
	Use:   "chatnote",
	Short: "Save Claude chat transcripts as Evernote notes",
	Long: `chatnote converts Markdown-flavored Claude chat transcripts into ENML and
saves them as Evernote notes. Code blocks, headings, speaker markers, lists,
and inline formatting are preserved.

Credentials come from the EVERNOTE_DEV_TOKEN environment variable, a dotenv
file (./.env or ~/.chatnote.env), a .secrets/ directory, or the config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s

		var envPaths []string
		envPaths = append(envPaths, ".env")
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			envPaths = append(envPaths, filepath.Join(home, ".chatnote.env"))
		}
		e, err := secrets.LoadEnvFile(envPaths...)
		if err != nil {
			return err
		}
		loadedEnv = e

		if verbose && (len(s) > 0 || len(e) > 0) {
			fmt.Fprintf(os.Stderr, "Loaded %d secret file(s), %d dotenv value(s)\n", len(s), len(e))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chatnote.yaml or ~/.config/chatnote/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chatnote")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chatnote"))
		}
	}

	viper.SetDefault("evernote.timeout", 30*time.Second)
	viper.SetDefault("evernote.user_agent", "chatnote/"+version)
	viper.SetDefault("evernote.max_retries", 5)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.dir", defaultHistoryDir())

	viper.SetEnvPrefix("CHATNOTE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultHistoryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chatnote"
	}
	return filepath.Join(home, ".local", "state", "chatnote")
}

// resolveToken picks the developer token from, in order: the --token flag,
// the EVERNOTE_DEV_TOKEN environment variable, the dotenv file, the
// .secrets/ directory, and the config file.
func resolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if v := os.Getenv("EVERNOTE_DEV_TOKEN"); v != "" {
		return v
	}
	if v := loadedEnv["EVERNOTE_DEV_TOKEN"]; v != "" {
		return v
	}
	if v := loadedSecrets["evernote-dev-token"]; v != "" {
		return v
	}
	return viper.GetString("evernote.token")
}

// resolveSandbox reports whether the sandbox environment should be used.
func resolveSandbox(flagSandbox bool) bool {
	if flagSandbox {
		return true
	}
	for _, v := range []string{
		os.Getenv("EVERNOTE_SANDBOX"),
		loadedEnv["EVERNOTE_SANDBOX"],
		loadedSecrets["evernote-sandbox"],
	} {
		if strings.EqualFold(v, "true") {
			return true
		}
	}
	return viper.GetBool("evernote.sandbox")
}

// resolveNotebook picks the target notebook name; empty means the account's
// default notebook.
func resolveNotebook(flagNotebook string) string {
	if flagNotebook != "" {
		return flagNotebook
	}
	if v := os.Getenv("EVERNOTE_NOTEBOOK"); v != "" {
		return v
	}
	if v := loadedEnv["EVERNOTE_NOTEBOOK"]; v != "" {
		return v
	}
	if v := loadedSecrets["evernote-notebook"]; v != "" {
		return v
	}
	return viper.GetString("evernote.notebook")
}

// evernoteConfig assembles the client configuration for one command run.
// It fails when no token can be found.
func evernoteConfig(flagToken string, flagSandbox bool) (types.EvernoteConfig, error) {
	token := resolveToken(flagToken)
	if token == "" {
		return types.EvernoteConfig{}, fmt.Errorf(
			"no Evernote developer token provided: set EVERNOTE_DEV_TOKEN or use --token\n" +
				"Get a token at: https://www.evernote.com/api/DeveloperToken.action")
	}
	return types.EvernoteConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("evernote.timeout"),
			UserAgent: viper.GetString("evernote.user_agent"),
		},
		Token:      token,
		Sandbox:    resolveSandbox(flagSandbox),
		MaxRetries: viper.GetInt("evernote.max_retries"),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
