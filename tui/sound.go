package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/moodlift/internal/apperr"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format",
}

// prepSoundStream returns an audio stream for the specified sound file.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	f, err := os.Open(sound)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// playChime plays the configured completion sound and blocks until it
// finishes, so it must run off the UI loop.
func (m *Model) playChime() {
	sound := m.opts.Settings.Sound
	if sound == "" {
		return
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		slog.Error("unable to play sound", slog.Any("error", err))
		return
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	_ = stream.Close()

	speaker.Clear()
}

// notify announces the end of an activity with a desktop notification and
// an optional chime.
func (m *Model) notify(title string) {
	if !m.opts.Notifications.Enabled {
		return
	}

	err := beeep.Notify(
		"Activity complete",
		title+" is done. On to the next one!",
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}

	m.playChime()
}
