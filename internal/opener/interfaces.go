// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package opener hands external links (wa.me chats, tel: numbers, map pages,
// media files) to something outside the client.
package opener

//go:generate mockgen -source=interfaces.go -destination=../mock/opener_mock.go -package=mock

// ExternalLinkOpener opens a URL outside the client. It is fire-and-forget:
// a nil error only means the hand-off was accepted.
type ExternalLinkOpener interface {
	Open(url string) error
}
