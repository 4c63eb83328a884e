// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package opener

import (
	"errors"

	"github.com/MKhiriev/weld-storefront/internal/logger"
)

// FallbackOpener tries each opener in order and stops at the first success.
type FallbackOpener struct {
	openers []ExternalLinkOpener
	logger  *logger.Logger
}

func NewFallbackOpener(logger *logger.Logger, openers ...ExternalLinkOpener) *FallbackOpener {
	return &FallbackOpener{openers: openers, logger: logger}
}

// Open implements [ExternalLinkOpener]. URL validation errors stop the chain
// immediately; any other failure moves on to the next opener. The returned
// error joins every failure.
func (o *FallbackOpener) Open(rawURL string) error {
	if len(o.openers) == 0 {
		return ErrNoOpener
	}

	var errs []error
	for i, op := range o.openers {
		err := op.Open(rawURL)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrEmptyURL) || errors.Is(err, ErrUnsupportedScheme) {
			return err
		}
		o.logger.Debug().Err(err).Int("opener", i).Str("url", rawURL).Msg("link opener failed, trying next")
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
