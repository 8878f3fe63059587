// Package capture produces still-image payloads for classification, either
// from a camera device or from a user-provided file.
package capture

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/jpeg"

	"github.com/ayoisaiah/moodlift/internal/apperr"
)

var (
	// ErrDeviceUnavailable is reported when the camera cannot be opened,
	// either because no device exists or permission was denied.
	ErrDeviceUnavailable = &apperr.Error{
		Message: "camera unavailable: %v",
	}

	// ErrInvalidState is reported when capturing from a camera that has
	// not been started.
	ErrInvalidState = &apperr.Error{
		Message: "cannot capture: camera is not started",
	}

	// ErrUnsupportedType is reported for files that are not images.
	ErrUnsupportedType = &apperr.Error{
		Message: "unsupported file type: %s (expected an image)",
	}

	// ErrFileTooLarge is reported for image files above the size cap.
	ErrFileTooLarge = &apperr.Error{
		Message: "file is too large: %d bytes (limit is %d)",
	}

	errDecodeFailed = &apperr.Error{
		Message: "decoding image failed: %v",
	}
)

const jpegQuality = 90

// Payload is an encoded still image ready for classification.
type Payload struct {
	// DataURL is the JPEG image as a base64 data URL, the format the
	// classification endpoint expects.
	DataURL string
	Width   int
	Height  int
}

// Source produces one still image on demand.
type Source interface {
	Capture(ctx context.Context) (Payload, error)
}

// Once captures a single payload from the preferred source: the image file
// when a path is given, otherwise the camera snapshot command. The camera
// is released before returning regardless of the outcome.
func Once(
	ctx context.Context,
	imagePath, cameraCmd string,
) (Payload, error) {
	if imagePath != "" {
		return NewFileSource(imagePath).Capture(ctx)
	}

	grabber, err := NewCommandGrabber(cameraCmd)
	if err != nil {
		return Payload{}, ErrDeviceUnavailable.Fmt(err)
	}

	cam := NewCameraSource(grabber)

	err = cam.Start(ctx)
	if err != nil {
		return Payload{}, err
	}

	defer func() {
		_ = cam.Stop()
	}()

	return cam.Capture(ctx)
}

// encodePayload converts a decoded image into a JPEG data URL payload.
func encodePayload(img image.Image) (Payload, error) {
	var buf bytes.Buffer

	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	if err != nil {
		return Payload{}, errDecodeFailed.Fmt(err)
	}

	bounds := img.Bounds()

	return Payload{
		DataURL: "data:image/jpeg;base64," +
			base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
