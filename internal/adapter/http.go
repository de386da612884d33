// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/utils"
	"github.com/MKhiriev/julekalender/models"
)

const (
	// TokenSubject identifies the launcher in boundary tokens.
	TokenSubject = "launcher-ui"

	versionPath = "/api/version"

	// tokenRefreshMargin renews a token shortly before it expires so a
	// request never carries one that lapses in flight.
	tokenRefreshMargin = 5 * time.Second
)

type httpHostAdapter struct {
	client *utils.HTTPClient

	signKey       string
	issuer        string
	tokenDuration time.Duration

	mu    sync.Mutex
	token models.Token
	now   func() time.Time

	logger *logger.Logger
}

// NewHTTPHostAdapter constructs the HTTP implementation of [HostAdapter].
// It normalises adapterCfg.HTTPAddress into a base URL. When appCfg carries a
// sign key, every call presents a boundary token signed with it.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPHostAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (HostAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpHostAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signKey:       appCfg.TokenSignKey,
		issuer:        appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}, nil
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

func (h *httpHostAdapter) GetEnabledNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := h.call(ctx, models.OpGetEnabledNames, "", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (h *httpHostAdapter) GetAllParticipants(ctx context.Context) ([]models.Participant, error) {
	participants := make([]models.Participant, 0)
	if err := h.call(ctx, models.OpGetAllParticipants, "", nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (h *httpHostAdapter) AddParticipant(ctx context.Context, name string) (models.Participant, error) {
	var participant models.Participant
	err := h.call(ctx, models.OpAddParticipant, "", models.AddParticipantRequest{Name: name}, &participant)
	return participant, err
}

func (h *httpHostAdapter) UpdateParticipant(ctx context.Context, id string, update models.ParticipantUpdate) (*models.Participant, error) {
	var participant *models.Participant
	if err := h.call(ctx, models.OpUpdateParticipant, id, update, &participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (h *httpHostAdapter) DeleteParticipant(ctx context.Context, id string) error {
	return h.call(ctx, models.OpDeleteParticipant, id, nil, nil)
}

func (h *httpHostAdapter) ToggleParticipant(ctx context.Context, id string) (*models.Participant, error) {
	var participant *models.Participant
	if err := h.call(ctx, models.OpToggleParticipant, id, nil, &participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (h *httpHostAdapter) GetVisualizations(ctx context.Context) ([]models.Visualization, error) {
	visualizations := make([]models.Visualization, 0)
	if err := h.call(ctx, models.OpGetVisualizations, "", nil, &visualizations); err != nil {
		return nil, err
	}
	return visualizations, nil
}

func (h *httpHostAdapter) LaunchVisualization(ctx context.Context, id string) error {
	return h.call(ctx, models.OpLaunchVisualization, id, nil, nil)
}

func (h *httpHostAdapter) HostVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return version, fmt.Errorf("%w: version request: %w", ErrHostUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return version, err
	}
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return version, fmt.Errorf("%w: decode version: %w", ErrUnexpectedResponse, err)
	}
	return version, nil
}

// call performs op. A nil body sends no payload; a nil result ignores the
// response body.
func (h *httpHostAdapter) call(ctx context.Context, op models.Operation, id string, body, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(op.Method(), op.Path(id))
	if err != nil {
		h.logger.Err(err).Str("operation", op.String()).Msg("boundary call failed")
		return fmt.Errorf("%w: %s: %w", ErrHostUnavailable, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("operation", op.String()).Int("status", resp.StatusCode()).Msg("boundary call rejected")
		return err
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrUnexpectedResponse, op, err)
	}
	return nil
}

func (h *httpHostAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if h.signKey == "" {
		return req, nil
	}

	token, err := h.currentToken()
	if err != nil {
		return nil, fmt.Errorf("sign boundary token: %w", err)
	}
	return req.SetAuthToken(token.String()), nil
}

// currentToken returns the cached token, signing a fresh one when it is
// about to expire.
func (h *httpHostAdapter) currentToken() (models.Token, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token.SignedString != "" && !h.token.Expired(h.now().Add(tokenRefreshMargin)) {
		return h.token, nil
	}

	token, err := utils.GenerateJWTToken(h.issuer, TokenSubject, h.tokenDuration, h.signKey)
	if err != nil {
		return models.Token{}, err
	}
	h.token = token
	return token, nil
}
