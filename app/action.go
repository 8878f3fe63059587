package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/moodlift/internal/api"
	"github.com/ayoisaiah/moodlift/internal/capture"
	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/config"
	"github.com/ayoisaiah/moodlift/internal/emotion"
	"github.com/ayoisaiah/moodlift/internal/models"
	"github.com/ayoisaiah/moodlift/internal/osutil"
	"github.com/ayoisaiah/moodlift/internal/ui"
	"github.com/ayoisaiah/moodlift/report"
	"github.com/ayoisaiah/moodlift/store"
	"github.com/ayoisaiah/moodlift/tui"
)

const (
	envNoColor         = "NO_COLOR"
	envMoodliftNoColor = "MOODLIFT_NO_COLOR"
)

const captureTimeout = time.Minute

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// appConfig loads the configuration file and applies CLI overrides.
func appConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// initLogging routes the default slog logger to a rotated log file.
func initLogging() {
	logFile := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	slog.SetDefault(slog.New(handler))
}

// newAPIClient builds the classification and chat client from the config.
func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(
		cfg.API.PredictURL,
		cfg.API.ChatURL,
		api.Model(cfg.API.Model),
	)
}

// sessionHelper loads the filtered session records and returns the open
// store alongside them.
func sessionHelper(ctx *cli.Context) ([]*models.SessionRecord, store.DB, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	records, err := db.GetSessions(filter.StartTime, filter.EndTime, filter.Tags)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return records, db, nil
}

// defaultAction starts the interactive flow.
func defaultAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer func() {
		_ = dbClient.Close()
	}()

	return tui.Run(tui.New(cfg, dbClient, newAPIClient(cfg)))
}

// classifyAction captures a single photo, classifies it, and prints the
// detected mood.
func classifyAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	cctx, cancel := context.WithTimeout(ctx.Context, captureTimeout)
	defer cancel()

	payload, err := capture.Once(cctx, cfg.CLI.ImagePath, cfg.Capture.CameraCmd)
	if err != nil {
		return err
	}

	res, err := newAPIClient(cfg).Classify(cctx, payload)
	if err != nil {
		return err
	}

	return report.Mood(os.Stdout, res, cfg.CLI.JSON)
}

// activitiesAction prints the activity catalog for the given mood, or the
// neutral catalog when no mood is specified.
func activitiesAction(ctx *cli.Context) error {
	label := emotion.Neutral

	if arg := ctx.Args().First(); arg != "" {
		label = emotion.Normalize(arg)

		if !label.Known() {
			pterm.Info.Printfln(
				"unknown mood %q, showing the neutral catalog",
				arg,
			)

			label = emotion.Neutral
		}
	}

	report.Activities(os.Stdout, label, catalog.Sorted(label))

	return nil
}

// historyAction prints a table of the sessions started within a time
// period.
func historyAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	records, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	return report.History(
		os.Stdout,
		records,
		cfg.CLI.JSON,
		cfg.Display.TwentyFourHour,
	)
}

// deleteAction deletes the sessions started within a time period after
// confirmation.
func deleteAction(ctx *cli.Context) error {
	records, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if len(records) == 0 {
		pterm.Info.Println("no sessions found for the specified period")
		return nil
	}

	ok, err := pterm.DefaultInteractiveConfirm.Show(
		fmt.Sprintf("Delete %d session(s)?", len(records)),
	)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	return db.DeleteSessions(records)
}

// editConfigAction opens the moodlift config file in the user's default
// text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout
	cmd.Stderr = config.Stderr

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/moodlift/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if MOODLIFT_NO_COLOR is set
	if _, exists := os.LookupEnv(envMoodliftNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	config.InitializePaths()

	initLogging()

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting moodlift")

	return nil
}
