package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	apierrors "github.com/narender/product-console/common/apierrors"
	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/telemetry/instrumentation"
	"github.com/samber/lo"
)

// Option customizes a REST client.
type Option func(*restClient)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(c *http.Client) Option {
	return func(rc *restClient) {
		rc.http = c
	}
}

// WithToken overrides the bearer token taken from config.
func WithToken(token string) Option {
	return func(rc *restClient) {
		rc.token = token
	}
}

// restClient is the HTTP plumbing shared by the auth and product clients.
type restClient struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

func newRESTClient(cfg *config.Config, logger *slog.Logger, opts ...Option) *restClient {
	rc := &restClient{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.APIToken,
		http: &http.Client{
			Transport: instrumentation.NewHTTPTransport(nil),
			Timeout:   cfg.HTTPTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// errorBody is what the backend sends with a non-2xx status.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends one request and returns the raw response body of a 2xx answer.
// Non-2xx statuses become *apierrors.ServerError; transport failures become
// NETWORK_ERROR or REQUEST_TIMEOUT AppErrors.
func (c *restClient) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apierrors.NewAppError(apierrors.ErrCodeMalformedData, "Failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apierrors.NewAppError(apierrors.ErrCodeInternalProcessing, "Failed to prepare request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.DebugContext(ctx, "Sending request to backend",
		slog.String("method", method),
		slog.String("url", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, apierrors.NewAppError(apierrors.ErrCodeRequestTimeout, "Backend request timed out or was canceled", err)
		}
		return nil, apierrors.NewAppError(apierrors.ErrCodeNetworkError, "Backend is unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewAppError(apierrors.ErrCodeNetworkError, "Failed to read backend response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := apierrors.NewServerError(resp.StatusCode, errorMessage(raw))
		c.logger.WarnContext(ctx, "Backend rejected request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
			slog.String("message", serverErr.Message))
		return nil, serverErr
	}
	return raw, nil
}

// errorMessage pulls message (or error) out of an error body; anything
// undecodable yields "".
func errorMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	msg, _ := lo.Coalesce(strings.TrimSpace(body.Message), strings.TrimSpace(body.Error))
	return msg
}

func malformed(what string, err error) error {
	return apierrors.NewAppError(apierrors.ErrCodeMalformedData, fmt.Sprintf("Backend sent an unreadable %s", what), err)
}
