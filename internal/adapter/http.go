// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/weld-storefront/internal/config"
	"github.com/MKhiriev/weld-storefront/internal/logger"
	"github.com/MKhiriev/weld-storefront/internal/utils"
	"github.com/MKhiriev/weld-storefront/models"
	"github.com/go-resty/resty/v2"
)

const (
	portfolioPath = "/portfolio"
	cataloguePath = "/catalogue"
	contactPath   = "/contact"
	uploadPath    = "/admin/upload"

	uploadFileField = "file"
)

type httpGateway struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPGateway constructs the REST implementation of [Gateway].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and an X-Request-ID header drawn from ids.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGateway(adapterCfg config.ClientAdapter, ids utils.IDGenerator, logger *logger.Logger) (Gateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, ids)

	return &httpGateway{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [Gateway].
func (h *httpGateway) BaseURL() string {
	return h.baseURL
}

// FetchPortfolio implements [Gateway].
func (h *httpGateway) FetchPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	items := make([]models.PortfolioItem, 0)
	if err := h.getJSON(ctx, portfolioPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchCatalogue implements [Gateway].
func (h *httpGateway) FetchCatalogue(ctx context.Context) ([]models.CatalogueItem, error) {
	items := make([]models.CatalogueItem, 0)
	if err := h.getJSON(ctx, cataloguePath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchContact implements [Gateway].
func (h *httpGateway) FetchContact(ctx context.Context) (models.Contact, error) {
	var contact models.Contact
	if err := h.getJSON(ctx, contactPath, &contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// SubmitUpload implements [Gateway]. It POSTs a multipart form to
// POST /admin/upload with the text fields username, password, title,
// description and category and the binary part "file" carrying the declared
// file name and content type. The decoded server echo is returned as
// [models.UploadAck]. Any 2xx status is a success; when its body is not an
// echo the returned ack is zero.
func (h *httpGateway) SubmitUpload(ctx context.Context, creds models.Credentials, meta models.UploadMetadata, file models.FileRef) (models.UploadAck, error) {
	content, err := file.Open()
	if err != nil {
		return models.UploadAck{}, &UploadError{Err: fmt.Errorf("open upload file: %w", err)}
	}
	defer content.Close()

	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"username":    creds.Username,
			"password":    creds.Password,
			"title":       meta.Title,
			"description": meta.Description,
			"category":    string(meta.Category),
		}).
		SetMultipartField(uploadFileField, file.Name, file.ContentType, content).
		Post(uploadPath)
	if err != nil {
		h.logFailure(resp, uploadPath, err)
		return models.UploadAck{}, &UploadError{Err: fmt.Errorf("upload request: %w", err)}
	}
	h.logResponse(resp, uploadPath)

	if err = mapUploadError(resp); err != nil {
		return models.UploadAck{}, err
	}

	var ack models.UploadAck
	if len(strings.TrimSpace(resp.String())) > 0 {
		if err = json.Unmarshal(resp.Body(), &ack); err != nil {
			h.logger.Warn().
				Err(err).
				Str("request_id", requestID(resp)).
				Int("status", resp.StatusCode()).
				Str("body", resp.String()).
				Msg("upload accepted with undecodable response")
			return models.UploadAck{}, nil
		}
	}

	return ack, nil
}

func (h *httpGateway) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(path)
	if err != nil {
		h.logFailure(resp, path, err)
		return fmt.Errorf("%w: get %s: %v", ErrNetwork, path, err)
	}
	h.logResponse(resp, path)

	if err = mapReadError(resp); err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrNetwork, path, err)
	}

	return nil
}

func (h *httpGateway) logResponse(resp *resty.Response, path string) {
	h.logger.Debug().
		Str("request_id", requestID(resp)).
		Str("method", resp.Request.Method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("backend response")
}

func (h *httpGateway) logFailure(resp *resty.Response, path string, err error) {
	h.logger.Debug().
		Err(err).
		Str("request_id", requestID(resp)).
		Str("path", path).
		Msg("backend request failed")
}

func requestID(resp *resty.Response) string {
	if resp == nil || resp.Request == nil {
		return ""
	}
	return resp.Request.Header.Get(utils.RequestIDHeader)
}
