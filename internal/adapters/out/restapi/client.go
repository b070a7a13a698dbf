// Package restapi implements the outbound HTTP adapter for the persistence
// collaborator. Each resource gets its own repository subpackage (clientrepo,
// supplierrepo, productrepo, orderrepo) built on the shared Client transport
// defined here.
//
// Error handling follows the collaborator contract: transport failures,
// non-2xx responses and malformed payload shapes are logged and propagated
// raw to the caller. Nothing is retried and nothing is translated into a
// typed domain error; "not found", "conflict" and "server error" all
// collapse into a generic failure.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"backoffice/internal/pkg/metrics"

	"github.com/google/uuid"
)

// ErrUnexpectedShape is returned when a list endpoint responds with anything
// other than a JSON array. The response is discarded wholesale; callers must
// not apply a partial result.
var ErrUnexpectedShape = errors.New("collaborator returned an unexpected payload shape")

// Client is the shared HTTP transport for all collaborator repositories.
// It stamps every request with a correlation id, records call metrics and
// logs failures before propagating them.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.CollaboratorMetrics
}

// NewClient creates a transport against the given base URL. The timeout is
// the only resilience mechanism configured; there is no retry or backoff.
func NewClient(
	baseURL string,
	timeout time.Duration,
	logger *slog.Logger,
	collaboratorMetrics *metrics.CollaboratorMetrics,
) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "restapi"),
		metrics: collaboratorMetrics,
	}
}

// List performs a GET and decodes the response into out, which must be a
// pointer to a slice. A non-array payload fails with ErrUnexpectedShape
// before anything is decoded.
func (c *Client) List(ctx context.Context, resource, path string, out any) error {
	start := time.Now()

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.fail(ctx, resource, "list", metrics.OutcomeTransport, start, err)
		return err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		shapeErr := fmt.Errorf("%w: GET %s did not return an array", ErrUnexpectedShape, path)
		c.fail(ctx, resource, "list", metrics.OutcomeShape, start, shapeErr)
		return shapeErr
	}

	if err = json.Unmarshal(trimmed, out); err != nil {
		shapeErr := fmt.Errorf("%w: GET %s: %w", ErrUnexpectedShape, path, err)
		c.fail(ctx, resource, "list", metrics.OutcomeShape, start, shapeErr)
		return shapeErr
	}

	c.metrics.RecordCall(resource, "list", metrics.OutcomeOK, time.Since(start))
	return nil
}

// Create performs a POST with a JSON body, decoding the response into out
// when out is non-nil.
func (c *Client) Create(ctx context.Context, resource, path string, body, out any) error {
	return c.send(ctx, resource, "create", http.MethodPost, path, body, out)
}

// Update performs a PUT with a JSON body under the given operation label
// ("update" or "update_status"), decoding the response into out when out is
// non-nil.
func (c *Client) Update(ctx context.Context, resource, operation, path string, body, out any) error {
	return c.send(ctx, resource, operation, http.MethodPut, path, body, out)
}

// Delete performs a DELETE. Exactly one request is issued per call.
func (c *Client) Delete(ctx context.Context, resource, path string) error {
	return c.send(ctx, resource, "delete", http.MethodDelete, path, nil, nil)
}

func (c *Client) send(ctx context.Context, resource, operation, method, path string, body, out any) error {
	start := time.Now()

	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		c.fail(ctx, resource, operation, metrics.OutcomeTransport, start, err)
		return err
	}

	if out != nil {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 {
			if err = json.Unmarshal(trimmed, out); err != nil {
				shapeErr := fmt.Errorf("%w: %s %s: %w", ErrUnexpectedShape, method, path, err)
				c.fail(ctx, resource, operation, metrics.OutcomeShape, start, shapeErr)
				return shapeErr
			}
		}
	}

	c.metrics.RecordCall(resource, operation, metrics.OutcomeOK, time.Since(start))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("collaborator responded %d for %s %s", resp.StatusCode, method, path)
	}

	return raw, nil
}

func (c *Client) fail(
	ctx context.Context,
	resource, operation, outcome string,
	start time.Time,
	err error,
) {
	c.metrics.RecordCall(resource, operation, outcome, time.Since(start))
	c.logger.ErrorContext(ctx, "collaborator request failed",
		"resource", resource,
		"operation", operation,
		"error", err,
	)
}
