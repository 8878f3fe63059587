package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyPredictURL           = "api.predict_url"
	keyChatURL              = "api.chat_url"
	keyModel                = "api.model"
	keyCameraCmd            = "capture.camera_cmd"
	keyVoiceCmd             = "capture.voice_cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keySound                = "settings.sound"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyPredictURL, "http://localhost:5000")
	v.SetDefault(keyChatURL, "http://localhost:5000")
	v.SetDefault(keyModel, "tensorflow")
	v.SetDefault(keyCameraCmd, "")
	v.SetDefault(keyVoiceCmd, "")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySound, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.API.PredictURL = v.GetString(keyPredictURL)
	c.API.ChatURL = v.GetString(keyChatURL)
	c.API.Model = v.GetString(keyModel)
	c.Capture.CameraCmd = v.GetString(keyCameraCmd)
	c.Capture.VoiceCmd = v.GetString(keyVoiceCmd)
	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Settings.Sound = v.GetString(keySound)
	c.Settings.SessionCmd = v.GetString(keySessionCmd)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)

	return nil
}
