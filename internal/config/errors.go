package config

import "github.com/ayoisaiah/moodlift/internal/apperr"

var (
	errInvalidURL = &apperr.Error{
		Message: "%s must be a valid http or https URL, got %q",
	}

	errUnknownModel = &apperr.Error{
		Message: "unknown classifier model: %s (must be tensorflow or deepface)",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidCmd = &apperr.Error{
		Message: "%s is not a valid command line: %v",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid since time: %s: %v",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}
)
