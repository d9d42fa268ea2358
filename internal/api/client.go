package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/pkg/logger"
)

// Client binds the backend's REST endpoints. Each method issues exactly one
// request, forwards the session cookie through the jar, and returns the parsed
// body verbatim. Retries, caching and response rewriting are all out of scope.
type Client struct {
	baseURL string
	http    *http.Client
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(config Config, jar http.CookieJar) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorEnvelope is the backend's failure body: {"detail": "..."}.
type errorEnvelope struct {
	Detail string `json:"detail"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to create request", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

// do performs the request and decodes a 2xx body into out when out is non-nil.
// Transport failures and non-success statuses come back as typed AppErrors;
// prior client state is never touched here, callers decide what a failure means.
func (c *Client) do(req *http.Request, out interface{}) error {
	lg := logger.From(req.Context())

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		lg.Error("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err)
		return apperrors.NewTransportError(
			fmt.Sprintf("request to %s failed", req.URL.Path), err)
	}
	defer resp.Body.Close()

	lg.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			envelope.Detail = ""
		}
		return apperrors.FromStatus(resp.StatusCode, envelope.Detail)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.AppError{
			Type:    apperrors.ErrorTypeServer,
			Code:    apperrors.ErrCodeDecodeFailed,
			Message: fmt.Sprintf("failed to decode response from %s", req.URL.Path),
			Cause:   err,
		}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return apperrors.NewTransportError("failed to marshal request body", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body, "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postMultipart sends form fields and an optional file part the way the
// backend's Form(...) and File(...) endpoints consume them.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField, fileName string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return apperrors.NewTransportError("failed to encode form field", err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return apperrors.NewTransportError("failed to create file part", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return apperrors.NewTransportError("failed to read file", err)
		}
	}

	if err := writer.Close(); err != nil {
		return apperrors.NewTransportError("failed to finalize form body", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, out)
}
