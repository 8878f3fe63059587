// Package app assembles the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/moodlift/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the moodlift app instance.
func Get() *cli.App {
	moodliftApp := &cli.App{
		Name: "moodlift",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Moodlift detects your mood from a photo and suggests short, timed
		activities to lift it. Selected activities run back to back with a
		countdown, and an assistant is available for mood-related questions
		along the way.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "classify",
				Usage:  "Detect your mood from a photo and print it",
				Action: classifyAction,
				Flags: []cli.Flag{
					imageFlag,
					modelFlag,
					cameraCmdFlag,
					jsonFlag,
				},
			},
			{
				Name:      "activities",
				Usage:     "List the activity catalog for a mood",
				ArgsUsage: "[MOOD]",
				Action:    activitiesAction,
			},
			{
				Name: "history",
				Usage: `
				Print the sessions started within a time period. Defaults to
				the current day`,
				Action: historyAction,
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					untilFlag,
					addTagFlag,
					jsonFlag,
				},
			},
			{
				Name:   "delete",
				Usage:  "Delete the sessions started within a time period",
				Action: deleteAction,
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					untilFlag,
					addTagFlag,
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			imageFlag,
			modelFlag,
			cameraCmdFlag,
			voiceCmdFlag,
			soundFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			addTagFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return moodliftApp
}
