// Package httpclient wraps net/http with the cross-cutting concerns every
// platform call shares: timeout, bearer token injection, request ids,
// metrics, and mapping of transport and status failures onto the client
// error taxonomy.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ats-client/internal/common/errors"
	"ats-client/internal/common/logger"
	"ats-client/internal/common/metrics"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.WithFields(map[string]interface{}{"component": "httpclient"}),
	}
}

// SetToken installs the bearer token attached to every subsequent request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// DoJSON issues a request with an optional JSON body and returns the raw
// response body of a 2xx reply. Non-2xx replies and transport failures
// are returned as *errors.ClientError.
func (c *Client) DoJSON(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("build request: %v", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(req, path)
}

// DoMultipart uploads a single file as a multipart form, as the resume
// upload endpoint expects.
func (c *Client) DoMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("build multipart form: %v", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("read upload file: %v", err))
	}
	if err := writer.Close(); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("finalize multipart form: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.execute(req, path)
}

func (c *Client) execute(req *http.Request, endpoint string) ([]byte, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		c.logger.Warn("request failed", map[string]interface{}{
			"requestId": requestID,
			"method":    req.Method,
			"endpoint":  endpoint,
			"error":     err.Error(),
		})
		return nil, errors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := extractDetail(data)
		c.logger.Debug("request rejected", map[string]interface{}{
			"requestId": requestID,
			"method":    req.Method,
			"endpoint":  endpoint,
			"status":    resp.StatusCode,
			"detail":    detail,
		})
		return nil, errors.FromStatusCode(resp.StatusCode, detail)
	}

	return data, nil
}

// extractDetail pulls the platform's {"detail": "..."} error message out
// of a failure body; anything else falls back to the raw body.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return string(body)
}
