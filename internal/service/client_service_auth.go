// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/models"
)

// The pair the backend ships with in its seed storage.
const (
	adminUsername = "admin"
	adminPassword = "changeme"
)

type clientAuthService struct {
	logger *logger.Logger
}

func NewClientAuthService(logger *logger.Logger) AuthService {
	return &clientAuthService{logger: logger}
}

// Login implements [AuthService]. The comparison is exact: no trimming, no
// case folding, no lockout.
func (a *clientAuthService) Login(username, password string) (models.Session, error) {
	if username != adminUsername || password != adminPassword {
		a.logger.Info().Str("username", username).Msg("admin login rejected")
		return models.Session{}, ErrAuthMismatch
	}

	a.logger.Info().Str("username", username).Msg("admin logged in")
	return models.Session{Authenticated: true, Username: username, Password: password}, nil
}
