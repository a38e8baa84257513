package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	// ConfigDir holds everything ocm keeps inside a working root.
	ConfigDir = ".ocm"

	keyServerURL      = "server_url"
	keyReviewCommand  = "review_command"
	keyReviewArgs     = "review_command_args"
	keyReviewTimeout  = "review_timeout_ms"
	keySessionTimeout = "session_timeout_ms"
	keyPollInterval   = "poll_interval_ms"
	keyMaxIterations  = "max_review_iterations"
	keyLogLevel       = "log_level"
	keyLogFormat      = "log_format"
	keyJournalPath    = "journal_path"
	keyProfilesPath   = "profiles_path"

	DefaultServerURL      = "http://127.0.0.1:4096"
	DefaultReviewCommand  = "review-uncommited"
	DefaultReviewTimeout  = 3_600_000
	DefaultSessionTimeout = 7_200_000
	DefaultPollInterval   = 2_000
	DefaultMaxIterations  = 20
)

// Config is the complete option surface, resolved once at startup and passed
// down explicitly. Nothing below the command layer reads the environment.
type Config struct {
	WorkingRoot         string
	ServerURL           string
	ReviewCommand       string
	ReviewCommandArgs   string
	ReviewTimeout       time.Duration
	SessionTimeout      time.Duration
	PollInterval        time.Duration
	MaxReviewIterations int
	LogLevel            string
	LogFormat           string
	JournalPath         string
	Profiles            Profiles
}

// Load resolves configuration for a working root: defaults first, then
// .ocm/config.toml when present, then OCM_* environment variables.
func Load(cfg *viper.Viper, workingRoot string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	root, err := filepath.Abs(workingRoot)
	if err != nil {
		return Config{}, fmt.Errorf("resolve working root: %w", err)
	}
	root = filepath.Clean(root)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(root, ConfigDir))
	cfg.SetEnvPrefix("OCM")
	cfg.AutomaticEnv()

	cfg.SetDefault(keyServerURL, DefaultServerURL)
	cfg.SetDefault(keyReviewCommand, DefaultReviewCommand)
	cfg.SetDefault(keyReviewArgs, "")
	cfg.SetDefault(keyReviewTimeout, DefaultReviewTimeout)
	cfg.SetDefault(keySessionTimeout, DefaultSessionTimeout)
	cfg.SetDefault(keyPollInterval, DefaultPollInterval)
	cfg.SetDefault(keyMaxIterations, DefaultMaxIterations)
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyLogFormat, "text")
	cfg.SetDefault(keyJournalPath, filepath.Join(root, ConfigDir, "journal.toml"))
	cfg.SetDefault(keyProfilesPath, filepath.Join(root, ConfigDir, "profiles.yaml"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	maxIterations := cfg.GetInt(keyMaxIterations)
	if maxIterations < 1 {
		return Config{}, fmt.Errorf("max review iterations must be at least 1, got %d", maxIterations)
	}

	reviewCommand := cfg.GetString(keyReviewCommand)
	if reviewCommand == "" {
		return Config{}, errors.New("review command name is empty")
	}

	profiles, err := LoadProfiles(cfg.GetString(keyProfilesPath))
	if err != nil {
		return Config{}, err
	}

	return Config{
		WorkingRoot:         root,
		ServerURL:           cfg.GetString(keyServerURL),
		ReviewCommand:       reviewCommand,
		ReviewCommandArgs:   cfg.GetString(keyReviewArgs),
		ReviewTimeout:       time.Duration(cfg.GetInt64(keyReviewTimeout)) * time.Millisecond,
		SessionTimeout:      time.Duration(cfg.GetInt64(keySessionTimeout)) * time.Millisecond,
		PollInterval:        time.Duration(cfg.GetInt64(keyPollInterval)) * time.Millisecond,
		MaxReviewIterations: maxIterations,
		LogLevel:            cfg.GetString(keyLogLevel),
		LogFormat:           cfg.GetString(keyLogFormat),
		JournalPath:         cfg.GetString(keyJournalPath),
		Profiles:            profiles,
	}, nil
}
