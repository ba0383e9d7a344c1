package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mariem-Daha/chefcode1.0/internal/util"
)

// Client handles API requests to the ChefCode backend. Every method wraps
// exactly one endpoint; failures are returned to the caller, which decides
// how to surface them. Local state is never rolled back on a failed call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// New creates a new API client.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     util.GetLogger(),
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

var (
	// ErrUnauthorized reports a rejected API key.
	ErrUnauthorized = errors.New("authentication failed, check API key configuration")
	// ErrOCRUnavailable reports HTTP 503 from the OCR endpoint, meaning
	// the backend has no OCR credentials configured.
	ErrOCRUnavailable = errors.New("ocr service not available")
)

// DecodeError marks a response whose shape did not match the contract.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Ping checks if the API server is available.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// doJSON performs one JSON round trip. authed requests carry the API key
// header; every request gets a request id for log correlation.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}, authed bool) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if authed {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := c.apiError(path, resp)
		c.logger.Warn("backend rejected request",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DecodeError{Endpoint: path, Err: err}
		}
	}
	return nil
}

// apiError extracts the backend's detail message when one is present.
func (c *Client) apiError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Detail != "" {
			return fmt.Errorf("%s: %s", path, payload.Detail)
		}
		if payload.Message != "" {
			return fmt.Errorf("%s: %s", path, payload.Message)
		}
	}
	return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
}
