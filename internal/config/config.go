// Package config handles loading, validation, and persistence of the
// application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/spotgrab/spotify-grabber/internal/constants"
	"github.com/spotgrab/spotify-grabber/internal/logger"
	"github.com/spotgrab/spotify-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// Username is the account name used to create the session.
	Username string `mapstructure:"username"        yaml:"username"`
	// Password is the account password used to create the session.
	Password string `mapstructure:"password"        yaml:"password"`
	// Scopes is the list of access scopes requested for the bearer token.
	Scopes []string `mapstructure:"scopes"          yaml:"scopes"`
	// OutputPath is the directory path where downloaded files will be saved.
	OutputPath string `mapstructure:"output_path"     yaml:"output_path"`
	// Premium selects the very-high quality stream when true.
	// Non-premium accounts must leave this false: quality is never silently upgraded.
	Premium bool `mapstructure:"premium"         yaml:"premium"`
	// FreshLogin discards the persisted credentials file before creating the
	// session, forcing a clean login instead of reusing a cached one.
	FreshLogin bool `mapstructure:"fresh_login"     yaml:"fresh_login"`
	// CredentialsPath is where reusable session credentials are persisted.
	CredentialsPath string `mapstructure:"credentials_path" yaml:"credentials_path"`
	// ReplaceTracks indicates whether to replace existing track files.
	ReplaceTracks bool `mapstructure:"replace_tracks"  yaml:"replace_tracks"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"       yaml:"log_level"`
	// DownloadSpeedLimit sets the maximum download speed (e.g., "1MB", "500KB").
	DownloadSpeedLimit string `mapstructure:"download_speed_limit" yaml:"download_speed_limit"`
	// MaxDownloadPause is the maximum pause duration between downloads.
	MaxDownloadPause string `mapstructure:"max_download_pause"   yaml:"max_download_pause"`
	// SpotifyBaseURL is the base URL for the streaming API (set automatically).
	SpotifyBaseURL string `mapstructure:"-" yaml:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-" yaml:"-"`
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes.
	ParsedDownloadSpeedLimit int64 `mapstructure:"-" yaml:"-"`
	// ParsedMaxDownloadPause is the parsed maximum download pause duration.
	ParsedMaxDownloadPause time.Duration `mapstructure:"-" yaml:"-"`
}

const (
	// SpotifyBaseURL is the base URL for the streaming backend.
	SpotifyBaseURL = "https://spclient.wg.spotify.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".spotify-grabber.yaml"

	// DefaultCredentialsPath is the default location of the persisted-credentials file.
	DefaultCredentialsPath = "creds.json"

	// DefaultOutputPath is the default directory for downloaded tracks.
	DefaultOutputPath = "downloads"
)

// DefaultScopes are the token scopes requested when the configuration names none.
//
//nolint:gochecknoglobals // Immutable default used by validation and the config template.
var DefaultScopes = []string{"streaming", "user-read-email"}

// Static error definitions for better error handling.
var (
	// ErrEmptyUsername indicates that the username is missing.
	ErrEmptyUsername = errors.New("username cannot be empty")
	// ErrEmptyPassword indicates that the password is missing.
	ErrEmptyPassword = errors.New("password cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxDownloadPause indicates that the max download pause duration is invalid.
	ErrInvalidMaxDownloadPause = errors.New("max_download_pause must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	// Omitted boolean keys must not degrade to false: downloads overwrite by
	// default and logins start fresh by default. Viper defaults keep an
	// explicit false in the file authoritative.
	viper.SetDefault("replace_tracks", true)
	viper.SetDefault("fresh_login", true)
	viper.SetDefault("premium", true)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Username) == "" {
		return ErrEmptyUsername
	}

	if strings.TrimSpace(cfg.Password) == "" {
		return ErrEmptyPassword
	}

	cfg.SpotifyBaseURL = SpotifyBaseURL

	if len(cfg.Scopes) == 0 {
		cfg.Scopes = DefaultScopes
	}

	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = DefaultCredentialsPath
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	var (
		downloadSpeedLimit       = strings.TrimSpace(cfg.DownloadSpeedLimit)
		parsedDownloadSpeedLimit uint64
		err                      error
	)

	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, err = humanize.ParseBytes(downloadSpeedLimit)
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	// io.CopyN accepts only int64 so we transform it safely in order to use it later.
	cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)

	// An empty pause disables the delay between downloads.
	if cfg.MaxDownloadPause != "" {
		cfg.ParsedMaxDownloadPause, err = time.ParseDuration(cfg.MaxDownloadPause)
		if err != nil {
			return fmt.Errorf("failed to parse max download pause: %w", err)
		}

		if cfg.ParsedMaxDownloadPause <= 0 {
			return ErrInvalidMaxDownloadPause
		}
	}

	return nil
}

// DefaultConfig returns a configuration pre-filled with default values,
// suitable for writing a starter config file.
func DefaultConfig() *Config {
	return &Config{
		Scopes:           DefaultScopes,
		OutputPath:       DefaultOutputPath,
		Premium:          true,
		FreshLogin:       true,
		CredentialsPath:  DefaultCredentialsPath,
		ReplaceTracks:    true,
		LogLevel:         "info",
		MaxDownloadPause: "3s",
	}
}

// WriteDefaultConfig writes a starter configuration file to the given path.
// It refuses to overwrite an existing file.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists {
		return fmt.Errorf("config file already exists: %s", path)
	}

	content, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err = os.WriteFile(path, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
