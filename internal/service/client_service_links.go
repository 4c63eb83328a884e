// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/weld-storefront/models"
)

const enquiryTemplate = `Hello, I am interested in "%s". Please provide details/price.`

type clientLinkService struct {
	baseURL string
}

// NewClientLinkService returns a LinkService resolving media paths against
// baseURL.
func NewClientLinkService(baseURL string) LinkService {
	return &clientLinkService{baseURL: strings.TrimRight(baseURL, "/")}
}

func (l *clientLinkService) WhatsAppURL(contact models.Contact, service string) (string, error) {
	return WhatsAppURL(contact, service)
}

func (l *clientLinkService) PhoneURL(contact models.Contact) (string, error) {
	return PhoneURL(contact)
}

func (l *clientLinkService) MapsURL(contact models.Contact) (string, error) {
	return MapsURL(contact)
}

func (l *clientLinkService) MediaURL(path string) string {
	return ResolveMediaURL(l.baseURL, path)
}

// WhatsAppURL composes https://wa.me/<digits>?text=<message>. The number is
// the WhatsApp field, or the phone when that is empty, with every non-digit
// removed. Spaces in the message are encoded as %20.
func WhatsAppURL(contact models.Contact, service string) (string, error) {
	number := contact.WhatsApp
	if strings.TrimSpace(number) == "" {
		number = contact.Phone
	}

	digits := digitsOnly(number)
	if digits == "" {
		return "", ErrNoContact
	}

	msg := strings.ReplaceAll(enquiryTemplate, "%s", service)
	text := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text, nil
}

// PhoneURL returns tel:<phone> with the phone exactly as stored.
func PhoneURL(contact models.Contact) (string, error) {
	if strings.TrimSpace(contact.Phone) == "" {
		return "", ErrNoContact
	}
	return "tel:" + contact.Phone, nil
}

// MapsURL returns the stored maps link as-is.
func MapsURL(contact models.Contact) (string, error) {
	if strings.TrimSpace(contact.MapsURL) == "" {
		return "", ErrNoContact
	}
	return contact.MapsURL, nil
}

// ResolveMediaURL joins baseURL and a backend-relative path. Absolute http(s)
// URLs and empty paths are returned unchanged.
func ResolveMediaURL(baseURL, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(baseURL, "/") + path
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
