package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings
	Config struct {
		API           APIConfig
		Capture       CaptureConfig
		Notifications NotificationConfig
		Settings      SettingsConfig
		Display       DisplayConfig
		CLI           CLIConfig
	}

	// APIConfig holds the endpoints for the classification and chat services
	APIConfig struct {
		PredictURL string
		ChatURL    string
		Model      string
	}

	// CaptureConfig holds image and voice capture settings
	CaptureConfig struct {
		CameraCmd string
		VoiceCmd  string
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool
	}

	// SettingsConfig holds general behavior settings
	SettingsConfig struct {
		Sound      string
		SessionCmd string
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// CLIConfig holds settings that only come from command-line flags
	CLIConfig struct {
		ImagePath string
		Tags      []string
		StartTime time.Time
		JSON      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v1.0.0"

var (
	configDir      = "moodlift"
	configFileName = "config.yml"
	dbFileName     = "moodlift.db"
	logFileName    = "moodlift.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func InitializePaths() {
	moodliftEnv := strings.TrimSpace(os.Getenv("MOODLIFT_ENV"))
	if moodliftEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", moodliftEnv)
		dbFileName = fmt.Sprintf("moodlift_%s.db", moodliftEnv)
		logFileName = fmt.Sprintf("moodlift_%s.log", moodliftEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return cfg, nil
}
