package action

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Opener hands a URI to whatever the system registers for its scheme.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// SystemOpener opens URIs with the platform's default handler.
type SystemOpener struct {
	GOOS   string
	Runner Runner
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{GOOS: runtime.GOOS, Runner: ExecRunner{}}
}

func (o *SystemOpener) Open(ctx context.Context, uri string) error {
	name, args := openCommand(o.GOOS, uri)
	if err := o.Runner.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s %s: %w", name, uri, err)
	}
	return nil
}

// openCommand returns the command that opens uri on goos.
func openCommand(goos, uri string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}
