package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/moodlift/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Image         string
	Model         string
	CameraCmd     string
	VoiceCmd      string
	Sound         string
	SessionCmd    string
	Tags          string
	Since         string
	DisableNotify bool
	JSON          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Image:         ctx.String("image"),
			Model:         ctx.String("model"),
			CameraCmd:     ctx.String("camera-cmd"),
			VoiceCmd:      ctx.String("voice-cmd"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			Tags:          ctx.String("tag"),
			Since:         ctx.String("since"),
			DisableNotify: ctx.Bool("disable-notification"),
			JSON:          ctx.Bool("json"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Image != "" {
		c.CLI.ImagePath = opts.Image
	}

	if opts.Model != "" {
		c.API.Model = opts.Model
	}

	if opts.CameraCmd != "" {
		c.Capture.CameraCmd = opts.CameraCmd
	}

	if opts.VoiceCmd != "" {
		c.Capture.VoiceCmd = opts.VoiceCmd
	}

	if opts.Tags != "" {
		c.CLI.Tags = splitAndTrimTags(opts.Tags)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Sound != "" {
		if opts.Sound == "off" {
			c.Settings.Sound = ""
		} else {
			c.Settings.Sound = opts.Sound
		}
	}

	if opts.SessionCmd != "" {
		c.Settings.SessionCmd = opts.SessionCmd
	}

	c.CLI.JSON = opts.JSON

	if opts.Since != "" {
		startTime, err := timeutil.FromStr(opts.Since)
		if err != nil {
			return errInvalidSince.Fmt(opts.Since, err)
		}

		c.CLI.StartTime = startTime
	} else {
		c.CLI.StartTime = time.Now()
	}

	return nil
}

// splitAndTrimTags splits a comma-separated tag string and trims whitespace.
func splitAndTrimTags(tags string) []string {
	split := strings.Split(tags, ",")

	trimmed := make([]string, len(split))

	for i, tag := range split {
		trimmed[i] = strings.TrimSpace(tag)
	}

	return trimmed
}
