// Package api is the client for the relay's HTTP API.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Elias-Manica/push-notifications-poc/internal/dto"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const deviceNotFoundMsg = "Device not found"

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code    int
	Message string
	Errors  []string
}

func (e *StatusError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api: %d %s: %s", e.Code, e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api: %d %s", e.Code, e.Message)
}

type RemoveResult struct {
	AlreadyRemoved bool
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New expects baseURL to include the API prefix, e.g. http://localhost:3000/api/v1.
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: 10 * time.Second})
}

func NewWithHTTPClient(baseURL string, cli *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: cli}
}

func (c *Client) RegisterToken(ctx context.Context, req *dto.RegisterTokenRequest) (*dto.RegisterTokenResponse, error) {
	res := &dto.RegisterTokenResponse{}
	if err := c.do(ctx, http.MethodPost, "/notifications/tokens", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// RemoveToken treats a 404 for the device as success; the token was already gone.
func (c *Client) RemoveToken(ctx context.Context, deviceID string) (*RemoveResult, error) {
	err := c.do(ctx, http.MethodDelete, "/notifications/tokens/"+url.PathEscape(deviceID), nil, &dto.RemoveTokenResponse{})
	if err == nil {
		return &RemoveResult{}, nil
	}

	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound && se.Message == deviceNotFoundMsg {
		zap.L().Info("token already removed", zap.String("deviceID", deviceID))
		return &RemoveResult{AlreadyRemoved: true}, nil
	}
	return nil, err
}

func (c *Client) CountTokens(ctx context.Context) (int64, error) {
	res := &dto.CountTokensResponse{}
	if err := c.do(ctx, http.MethodGet, "/notifications/tokens/count", nil, res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (c *Client) ListTokens(ctx context.Context) (*dto.ListTokensResponse, error) {
	res := &dto.ListTokensResponse{}
	if err := c.do(ctx, http.MethodGet, "/notifications/tokens", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) SendNotification(
	ctx context.Context,
	req *dto.SendNotificationRequest,
) (*dto.SendNotificationResponse, error) {
	res := &dto.SendNotificationResponse{}
	if err := c.do(ctx, http.MethodPost, "/events/enviar", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.L().Debug("failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		errBody := struct {
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}{}
		if err = json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			se.Message = errBody.Message
			se.Errors = errBody.Errors
		}
		return se
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
