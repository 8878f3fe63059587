package config

import (
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateURL("api.predict_url", c.API.PredictURL); err != nil {
		return err
	}

	if err := validateURL("api.chat_url", c.API.ChatURL); err != nil {
		return err
	}

	if err := c.validateModel(); err != nil {
		return err
	}

	if c.Settings.Sound != "" {
		if err := validateSound(c.Settings.Sound); err != nil {
			return err
		}
	}

	for key, cmd := range map[string]string{
		"capture.camera_cmd": c.Capture.CameraCmd,
		"capture.voice_cmd":  c.Capture.VoiceCmd,
		"settings.cmd":       c.Settings.SessionCmd,
	} {
		if cmd == "" {
			continue
		}

		if _, err := shellquote.Split(cmd); err != nil {
			return errInvalidCmd.Fmt(key, err)
		}
	}

	return nil
}

func validateURL(key, value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return errInvalidURL.Fmt(key, value)
	}

	return nil
}

func (c *Config) validateModel() error {
	validModels := []string{"", "tensorflow", "deepface"}

	if !slices.Contains(validModels, c.API.Model) {
		return errUnknownModel.Fmt(c.API.Model)
	}

	return nil
}

func validateSound(sound string) error {
	ext := strings.ToLower(filepath.Ext(sound))
	validExts := []string{".mp3", ".ogg", ".flac", ".wav"}

	if !slices.Contains(validExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	return nil
}
