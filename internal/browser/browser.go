// Package browser opens URLs in the user's default web browser.
package browser

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/matzehuels/pypisearch/pkg/errors"
)

// StartFunc starts name with args and returns without waiting for it to exit.
type StartFunc func(name string, args ...string) error

// Launcher hands URLs to the platform's browser opener.
type Launcher struct {
	goos  string
	start StartFunc
}

// New returns a Launcher for the running platform.
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS, start: startDetached}
}

// NewWithStarter returns a Launcher for goos that runs commands through start.
func NewWithStarter(goos string, start StartFunc) *Launcher {
	return &Launcher{goos: goos, start: start}
}

// Open opens rawURL in the default browser.
//
// Only http and https URLs are accepted. The opener is started and not
// waited on; Open returns once the process has been spawned. A cancelled
// ctx prevents the launch.
func (l *Launcher) Open(ctx context.Context, rawURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := errors.ValidateURL(rawURL); err != nil {
		return err
	}
	if _, err := url.Parse(rawURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}

	name, args, err := command(l.goos, rawURL)
	if err != nil {
		return err
	}
	if err := l.start(name, args...); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "launch %s", name)
	}
	return nil
}

func command(goos, rawURL string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		return "cmd", []string{"/c", "start", rawURL}, nil
	default:
		return "", nil, errors.New(errors.ErrCodeInternal, "unsupported platform: %s", goos)
	}
}

// startDetached spawns the opener and reaps it in the background so no
// zombie is left behind.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
