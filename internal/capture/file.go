package capture

import (
	"bytes"
	"context"
	"image"
	"os"
	"strings"

	// Register decoders for the formats accepted from file uploads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

const (
	// MaxFileSize caps accepted image files at 5 MiB.
	MaxFileSize = 5 * 1024 * 1024

	// Oversized images are scaled down to fit within these bounds while
	// preserving aspect ratio.
	maxWidth  = 1280
	maxHeight = 720
)

// FileSource reads a still image from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source that captures from the given file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Capture reads, validates, and encodes the file as a classification
// payload. Non-image files are rejected and oversized images are downsized
// before encoding.
func (f *FileSource) Capture(_ context.Context) (Payload, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return Payload{}, err
	}

	if len(b) > MaxFileSize {
		return Payload{}, ErrFileTooLarge.Fmt(len(b), MaxFileSize)
	}

	mtype := mimetype.Detect(b)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return Payload{}, ErrUnsupportedType.Fmt(mtype.String())
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return Payload{}, errDecodeFailed.Fmt(err)
	}

	return encodePayload(downsize(img))
}

// downsize scales the image to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already within bounds are returned unchanged.
func downsize(img image.Image) image.Image {
	bounds := img.Bounds()

	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxWidth && h <= maxHeight {
		return img
	}

	if float64(w)/float64(h) > float64(maxWidth)/float64(maxHeight) {
		h = h * maxWidth / w
		w = maxWidth
	} else {
		w = w * maxHeight / h
		h = maxHeight
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
