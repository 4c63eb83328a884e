// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// mapReadError converts a non-2xx read response into an ErrNetwork error.
func mapReadError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrNetwork, resp.StatusCode(), body)
}

// mapUploadError converts a non-2xx upload response into an *UploadError.
func mapUploadError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	return &UploadError{
		Status: resp.StatusCode(),
		Detail: parseDetail(resp.Body()),
	}
}

// parseDetail extracts the "detail" member of an error body. It is either a
// plain string or a list of validation entries, each with a "msg" member.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var entries []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &entries); err != nil {
		return ""
	}

	msgs := make([]string, 0, len(entries))
	for _, e := range entries {
		if m := strings.TrimSpace(e.Msg); m != "" {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, "; ")
}
