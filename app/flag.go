package app

import "github.com/urfave/cli/v2"

var (
	imageFlag = &cli.StringFlag{
		Name:    "image",
		Aliases: []string{"i"},
		Usage:   "Classify an image file instead of taking a photo with the camera",
	}

	modelFlag = &cli.StringFlag{
		Name:  "model",
		Usage: "Classifier model to use: tensorflow or deepface",
	}

	cameraCmdFlag = &cli.StringFlag{
		Name:  "camera-cmd",
		Usage: "Command that writes a camera snapshot to the file path given as its last argument (e.g. 'fswebcam --no-banner')",
	}

	voiceCmdFlag = &cli.StringFlag{
		Name:  "voice-cmd",
		Usage: "Command that prints recognised speech to stdout, used for voice input in the assistant panel",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file to play when an activity completes (mp3, ogg, flac, or wav). Disable with 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after an activity is completed",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, or all-time",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "The start of the reporting period (e.g. '3 days ago')",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "The end of the reporting period. Defaults to now",
	}
)
