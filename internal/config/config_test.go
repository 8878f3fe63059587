package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/moodlift/internal/config"
)

func defaultConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			PredictURL: "http://localhost:5000",
			ChatURL:    "http://localhost:5000",
			Model:      "tensorflow",
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatal("expected a default config file to be written:", err)
	}

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	contents := []byte(`api:
  predict_url: http://192.168.1.20:8000
  chat_url: http://192.168.1.20:8000
  model: deepface
capture:
  camera_cmd: fswebcam --no-banner
notifications:
  enabled: false
settings:
  sound: chime.ogg
display:
  dark_theme: false
`)

	if err := os.WriteFile(configPath, contents, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.API.PredictURL != "http://192.168.1.20:8000" {
		t.Fatalf("unexpected predict URL: %s", cfg.API.PredictURL)
	}

	if cfg.API.Model != "deepface" {
		t.Fatalf("unexpected model: %s", cfg.API.Model)
	}

	if cfg.Capture.CameraCmd != "fswebcam --no-banner" {
		t.Fatalf("unexpected camera command: %s", cfg.Capture.CameraCmd)
	}

	if cfg.Notifications.Enabled {
		t.Fatal("expected notifications to be disabled")
	}

	if cfg.Settings.Sound != "chime.ogg" {
		t.Fatalf("unexpected sound: %s", cfg.Settings.Sound)
	}

	if cfg.Display.DarkTheme {
		t.Fatal("expected dark theme to be disabled")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *config.Config) {},
		},
		{
			name: "deepface model",
			mutate: func(c *config.Config) {
				c.API.Model = "deepface"
			},
		},
		{
			name: "unknown model",
			mutate: func(c *config.Config) {
				c.API.Model = "resnet"
			},
			wantErr: true,
		},
		{
			name: "invalid predict url",
			mutate: func(c *config.Config) {
				c.API.PredictURL = "not a url"
			},
			wantErr: true,
		},
		{
			name: "non-http scheme",
			mutate: func(c *config.Config) {
				c.API.ChatURL = "ftp://localhost:5000"
			},
			wantErr: true,
		},
		{
			name: "valid sound",
			mutate: func(c *config.Config) {
				c.Settings.Sound = "/sounds/chime.wav"
			},
		},
		{
			name: "invalid sound format",
			mutate: func(c *config.Config) {
				c.Settings.Sound = "chime.aiff"
			},
			wantErr: true,
		},
		{
			name: "unparseable camera command",
			mutate: func(c *config.Config) {
				c.Capture.CameraCmd = "fswebcam 'unterminated"
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}

			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
