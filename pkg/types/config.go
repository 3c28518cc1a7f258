package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the Evernote API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "chatnote/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EvernoteConfig holds connection settings for the Evernote service.
type EvernoteConfig struct {
	HTTPConfig `yaml:",inline"`

	// Token is the Evernote developer token. Usually supplied via the
	// EVERNOTE_DEV_TOKEN environment variable or a secrets file rather
	// than the config file.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Sandbox selects the sandbox environment instead of production.
	Sandbox bool `json:"sandbox" yaml:"sandbox"`

	// Notebook is the default target notebook name. Empty means the
	// account's default notebook.
	Notebook string `json:"notebook" yaml:"notebook"`

	// MaxRetries is the number of retry attempts on rate-limited
	// requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the local save-history database.
type HistoryConfig struct {
	// Enabled controls whether saves are recorded locally.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the history database
	// (default ~/.local/state/chatnote).
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all chatnote settings.
type Config struct {
	Evernote EvernoteConfig `json:"evernote" yaml:"evernote"`
	History  HistoryConfig  `json:"history" yaml:"history"`
}
