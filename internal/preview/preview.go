// Package preview hands a generated video to the desktop: the system
// browser or player, or the clipboard.
package preview

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no opener is known for the platform.
var ErrUnsupported = errors.New("preview: no system opener for this platform")

// Launcher opens and copies video URLs.
type Launcher struct {
	goos        string
	start       func(name string, args ...string) error
	copy        func(text string) error
	noClipboard bool
}

// NewLauncher returns a Launcher for the running platform.
func NewLauncher() *Launcher {
	return &Launcher{
		goos:        runtime.GOOS,
		start:       startDetached,
		copy:        clipboard.WriteAll,
		noClipboard: clipboard.Unsupported,
	}
}

// Open asks the operating system to open url with its default handler.
func (l *Launcher) Open(url string) error {
	name, args, err := openCommand(l.goos, url)
	if err != nil {
		return err
	}
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	log.Printf("[preview] opened %s via %s", url, name)
	return nil
}

// Copy places url on the system clipboard.
func (l *Launcher) Copy(url string) error {
	if l.noClipboard {
		return errors.New("preview: clipboard unavailable (install xclip, xsel or wl-clipboard)")
	}
	if err := l.copy(url); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func openCommand(goos, url string) (string, []string, error) {
	if strings.TrimSpace(url) == "" {
		return "", nil, errors.New("preview: empty url")
	}
	switch goos {
	case "darwin":
		return "open", []string{url}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}, nil
	default:
		return "", nil, ErrUnsupported
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
