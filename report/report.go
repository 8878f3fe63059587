// Package report renders command output for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/moodlift/internal/catalog"
	"github.com/ayoisaiah/moodlift/internal/emotion"
	"github.com/ayoisaiah/moodlift/internal/models"
	"github.com/ayoisaiah/moodlift/internal/ui"
)

// Quit prints the error and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}

// Mood prints a classification result.
func Mood(w io.Writer, res emotion.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	}

	if res.HasConfidence {
		fmt.Fprintf(
			w,
			"detected mood: %s (%.0f%% confidence)\n",
			ui.MoodColor(string(res.Label)),
			res.Confidence*100,
		)

		return nil
	}

	fmt.Fprintf(w, "detected mood: %s\n", ui.MoodColor(string(res.Label)))

	return nil
}

// Activities prints the activity catalog for a mood as a table.
func Activities(w io.Writer, label emotion.Label, acts []catalog.Activity) {
	data := [][]string{{"#", "ACTIVITY", "MINUTES", "DESCRIPTION"}}

	for i, a := range acts {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			ui.Highlight(a.Title),
			strconv.Itoa(a.DurationMinutes),
			a.Description,
		})
	}

	fmt.Fprintf(w, "activities for a %s mood:\n", ui.MoodColor(string(label)))

	ui.PrintTable(data, w)
}

// History prints stored session records, newest last.
func History(
	w io.Writer,
	records []*models.SessionRecord,
	asJSON, twentyFourHour bool,
) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "no sessions found for the specified period")
		return nil
	}

	timeFormat := "Jan 02, 2006 03:04 PM"
	if twentyFourHour {
		timeFormat = time.DateTime
	}

	data := [][]string{
		{"START", "MOOD", "ACTIVITIES", "COMPLETED", "SKIPPED", "ENDED EARLY"},
	}

	for _, rec := range records {
		var completed, skipped int

		for _, a := range rec.Activities {
			if a.Skipped {
				skipped++
			} else {
				completed++
			}
		}

		early := "no"
		if rec.EndedEarly {
			early = ui.Red("yes")
		}

		data = append(data, []string{
			rec.StartTime.Format(timeFormat),
			ui.MoodColor(string(rec.Emotion)),
			strconv.Itoa(len(rec.Activities)),
			strconv.Itoa(completed),
			strconv.Itoa(skipped),
			early,
		})
	}

	ui.PrintTable(data, w)

	return nil
}
