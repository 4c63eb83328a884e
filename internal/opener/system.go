// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package opener

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"tel":    true,
	"mailto": true,
}

// SystemOpener launches the platform URL handler: xdg-open on Linux and the
// BSDs, open on macOS and rundll32 on Windows.
type SystemOpener struct {
	goos  string
	start func(name string, args ...string) error
}

func NewSystemOpener() *SystemOpener {
	return &SystemOpener{goos: runtime.GOOS, start: startDetached}
}

// Open implements [ExternalLinkOpener]. Only http, https, tel and mailto
// URLs are passed on. The handler process is started and not waited for.
func (o *SystemOpener) Open(rawURL string) error {
	target, err := checkURL(rawURL)
	if err != nil {
		return err
	}

	name, args := o.command(target)
	if err = o.start(name, args...); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}

func (o *SystemOpener) command(target string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func checkURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrEmptyURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	return rawURL, nil
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
