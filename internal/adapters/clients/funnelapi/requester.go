package funnelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/glavpro/crm-stages/internal/platform/httpclient"
)

// Requester centralizes the HTTP request lifecycle for the funnel API:
// request creation, JSON marshaling, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do executes an HTTP request against the configured base URL.
//
// A non-nil reqBody is marshaled to JSON. The response status must equal
// wantStatus; otherwise the response is passed to TranslateHTTPError. A
// non-nil respBody receives the decoded response.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	return r.execute(req, wantStatus, respBody)
}

// BaseURL returns the base URL from the underlying HTTP client.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// BreakerHealth reports the circuit breaker state of the underlying HTTP
// client as an error, without a network call.
func (r *Requester) BreakerHealth(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	// bytes.Reader lets net/http rewind the body between retries.
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	resp, err := r.client.Do(req.Context(), req)
	if err != nil {
		// Retries exhausted on a retryable status: resp and err are both set.
		if resp != nil {
			defer r.closeBody(req.Context(), resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(req.Context(), "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(req.Context(), resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateHTTPError(resp)
		r.logger.DebugContext(req.Context(), "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
			slog.String("error", translateErr.Error()),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}

	return nil
}
