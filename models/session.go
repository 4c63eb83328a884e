// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the admin username/password pair typed into the admin
// form. It is forwarded verbatim with every upload.
type Credentials struct {
	Username string
	Password string
}

// Session holds the admin login state. It lives in memory only and is
// cleared on logout.
type Session struct {
	Authenticated bool
	Username      string
	Password      string
}

// Credentials returns the pair stored in the session.
func (s Session) Credentials() Credentials {
	return Credentials{Username: s.Username, Password: s.Password}
}
