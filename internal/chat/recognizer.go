package chat

import (
	"context"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CommandRecognizer converts speech to text by running an external
// speech-to-text command and reading the transcript from its stdout.
type CommandRecognizer struct {
	name string
	args []string
}

// NewCommandRecognizer parses the configured speech-to-text command line.
// An empty command line yields a nil recogniser.
func NewCommandRecognizer(cmdline string) (*CommandRecognizer, error) {
	if strings.TrimSpace(cmdline) == "" {
		return nil, nil
	}

	parts, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, err
	}

	return &CommandRecognizer{
		name: parts[0],
		args: parts[1:],
	}, nil
}

// Listen runs the command and returns the trimmed transcript.
func (r *CommandRecognizer) Listen(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, r.name, r.args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
