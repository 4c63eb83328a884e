// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package opener

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardOpener copies the URL to the system clipboard so the user can
// paste it into a browser or phone. Used when no URL handler is available,
// e.g. over SSH.
type ClipboardOpener struct {
	write func(string) error
}

func NewClipboardOpener() *ClipboardOpener {
	return &ClipboardOpener{write: clipboard.WriteAll}
}

// Open implements [ExternalLinkOpener].
func (o *ClipboardOpener) Open(rawURL string) error {
	target, err := checkURL(rawURL)
	if err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("copy to clipboard: %w", ErrNoOpener)
	}
	if err = o.write(target); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
