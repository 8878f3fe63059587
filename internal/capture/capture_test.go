package capture_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayoisaiah/moodlift/internal/capture"
)

// writePNG writes a solid-colour PNG of the given size and returns its
// path.
func writePNG(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 80, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "photo.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}

	return path
}

// decodePayload turns a data URL payload back into an image.
func decodePayload(t *testing.T, p capture.Payload) image.Image {
	t.Helper()

	const prefix = "data:image/jpeg;base64,"

	if !strings.HasPrefix(p.DataURL, prefix) {
		t.Fatalf("unexpected data URL prefix: %.40s", p.DataURL)
	}

	raw, err := base64.StdEncoding.DecodeString(
		strings.TrimPrefix(p.DataURL, prefix),
	)
	if err != nil {
		t.Fatal(err)
	}

	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}

	return img
}

func TestFileSourceCapture(t *testing.T) {
	path := writePNG(t, 640, 480)

	payload, err := capture.NewFileSource(path).Capture(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if payload.Width != 640 || payload.Height != 480 {
		t.Fatalf(
			"expected 640x480 payload, got %dx%d",
			payload.Width,
			payload.Height,
		)
	}

	decodePayload(t, payload)
}

func TestFileSourceDownsizesLargeImages(t *testing.T) {
	path := writePNG(t, 2560, 1440)

	payload, err := capture.NewFileSource(path).Capture(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if payload.Width != 1280 || payload.Height != 720 {
		t.Fatalf(
			"expected image scaled to 1280x720, got %dx%d",
			payload.Width,
			payload.Height,
		)
	}
}

func TestFileSourceRejectsNonImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	err := os.WriteFile(path, []byte("just some text"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = capture.NewFileSource(path).Capture(context.Background())
	if !errors.Is(err, capture.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFileSourceRejectsOversizedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.png")

	err := os.WriteFile(path, make([]byte, capture.MaxFileSize+1), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = capture.NewFileSource(path).Capture(context.Background())
	if !errors.Is(err, capture.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

type fakeGrabber struct {
	frame   image.Image
	openErr error
	closed  bool
}

func (g *fakeGrabber) Open(_ context.Context) error {
	return g.openErr
}

func (g *fakeGrabber) Grab(_ context.Context) (image.Image, error) {
	return g.frame, nil
}

func (g *fakeGrabber) Close() error {
	g.closed = true
	return nil
}

func TestCameraSourceRequiresStart(t *testing.T) {
	cam := capture.NewCameraSource(&fakeGrabber{})

	_, err := cam.Capture(context.Background())
	if !errors.Is(err, capture.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestCameraSourceStartFailure(t *testing.T) {
	cam := capture.NewCameraSource(&fakeGrabber{
		openErr: errors.New("device busy"),
	})

	err := cam.Start(context.Background())
	if !errors.Is(err, capture.ErrDeviceUnavailable) {
		t.Fatalf("expected ErrDeviceUnavailable, got %v", err)
	}

	if cam.Started() {
		t.Fatal("expected camera to remain stopped")
	}
}

func TestCameraSourceMirrorsFrames(t *testing.T) {
	// Left half black, right half white.
	frame := image.NewRGBA(image.Rect(0, 0, 64, 32))

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			c := color.RGBA{A: 255}
			if x >= 32 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}

			frame.Set(x, y, c)
		}
	}

	grabber := &fakeGrabber{frame: frame}
	cam := capture.NewCameraSource(grabber)

	if err := cam.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	payload, err := cam.Capture(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	img := decodePayload(t, payload)

	// After mirroring, the white half must be on the left.
	r, g, b, _ := img.At(4, 16).RGBA()
	if r < 0x8000 || g < 0x8000 || b < 0x8000 {
		t.Fatalf("expected mirrored frame to be white on the left, got rgb(%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	if err := cam.Stop(); err != nil {
		t.Fatal(err)
	}

	if !grabber.closed {
		t.Fatal("expected the device to be released on stop")
	}
}

func TestOncePrefersImageFile(t *testing.T) {
	path := writePNG(t, 64, 64)

	payload, err := capture.Once(context.Background(), path, "")
	if err != nil {
		t.Fatal(err)
	}

	if payload.Width != 64 {
		t.Fatalf("expected 64px wide payload, got %d", payload.Width)
	}
}

func TestOnceWithoutCameraCommand(t *testing.T) {
	_, err := capture.Once(context.Background(), "", "")
	if !errors.Is(err, capture.ErrDeviceUnavailable) {
		t.Fatalf("expected ErrDeviceUnavailable, got %v", err)
	}
}
