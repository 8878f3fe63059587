package capture

import (
	"bytes"
	"context"
	"image"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/moodlift/internal/apperr"
)

var errNoSnapshotCmd = &apperr.Error{
	Message: "no camera snapshot command is configured",
}

// FrameGrabber acquires raw frames from a camera device. Implementations
// own the device handle between Open and Close.
type FrameGrabber interface {
	Open(ctx context.Context) error
	Grab(ctx context.Context) (image.Image, error)
	Close() error
}

// CameraSource wraps a FrameGrabber with an explicit start/stop lifecycle.
// Capture is only valid while the source is started, and the captured frame
// is mirrored horizontally so the output matches what the user sees in a
// mirror.
type CameraSource struct {
	grabber FrameGrabber
	started bool
}

// NewCameraSource creates a camera source over the given grabber.
func NewCameraSource(grabber FrameGrabber) *CameraSource {
	return &CameraSource{grabber: grabber}
}

// Start acquires the camera device.
func (c *CameraSource) Start(ctx context.Context) error {
	if c.started {
		return nil
	}

	err := c.grabber.Open(ctx)
	if err != nil {
		return ErrDeviceUnavailable.Fmt(err)
	}

	c.started = true

	return nil
}

// Stop releases the camera device. The release is deterministic: once Stop
// returns, no device handle remains open.
func (c *CameraSource) Stop() error {
	if !c.started {
		return nil
	}

	c.started = false

	return c.grabber.Close()
}

// Started reports whether the device is currently acquired.
func (c *CameraSource) Started() bool {
	return c.started
}

// Capture grabs a single frame, mirrors it, and encodes it as a
// classification payload.
func (c *CameraSource) Capture(ctx context.Context) (Payload, error) {
	if !c.started {
		return Payload{}, ErrInvalidState
	}

	frame, err := c.grabber.Grab(ctx)
	if err != nil {
		return Payload{}, ErrDeviceUnavailable.Fmt(err)
	}

	return encodePayload(mirror(frame))
}

// mirror flips the image horizontally.
func mirror(img image.Image) image.Image {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(bounds.Max.X-1-(x-bounds.Min.X), y, img.At(x, y))
		}
	}

	return dst
}

// CommandGrabber captures frames by running an external snapshot command
// (e.g. fswebcam or a ffmpeg one-liner). The output file path is appended
// as the command's final argument.
type CommandGrabber struct {
	name string
	args []string
}

// NewCommandGrabber parses the configured snapshot command line.
func NewCommandGrabber(cmdline string) (*CommandGrabber, error) {
	parts, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, err
	}

	if len(parts) == 0 {
		return nil, errNoSnapshotCmd
	}

	return &CommandGrabber{
		name: parts[0],
		args: parts[1:],
	}, nil
}

// Open verifies that the snapshot command exists on the PATH.
func (g *CommandGrabber) Open(_ context.Context) error {
	_, err := exec.LookPath(g.name)

	return err
}

// Grab runs the snapshot command and decodes the frame it wrote.
func (g *CommandGrabber) Grab(ctx context.Context) (image.Image, error) {
	dir, err := os.MkdirTemp("", "moodlift-*")
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = os.RemoveAll(dir)
	}()

	outPath := filepath.Join(dir, "frame.jpg")

	args := make([]string, 0, len(g.args)+1)
	args = append(args, g.args...)
	args = append(args, outPath)

	cmd := exec.CommandContext(ctx, g.name, args...)

	err = cmd.Run()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errDecodeFailed.Fmt(err)
	}

	return img, nil
}

// Close releases nothing; the command holds the device only while running.
func (g *CommandGrabber) Close() error {
	return nil
}
