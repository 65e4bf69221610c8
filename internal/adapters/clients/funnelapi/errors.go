// Package funnelapi is the outbound adapter for the funnel HTTP API. It
// implements ports.FunnelClient on top of the instrumented httpclient and
// translates problem responses back into domain errors, so that callers
// branch with errors.Is and errors.As exactly as they would in-process.
package funnelapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/glavpro/crm-stages/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Problem codes sent by the server.
const (
	codeCompanyNotFound  = "COMPANY_NOT_FOUND"
	codeConditionsNotMet = "TRANSITION_CONDITIONS_NOT_MET"
	codeNullTerminal     = "NULL_STAGE_TERMINAL"
	codeStageConflict    = "STAGE_CONFLICT"
	codeActionRestricted = "ACTION_RESTRICTED"
	codeInvalidAction    = "INVALID_ACTION"
	codeUnknownStage     = "UNKNOWN_STAGE"
	codeValidationFailed = "VALIDATION_FAILED"
	codeForbidden        = "FORBIDDEN"
	codeRateLimited      = "RATE_LIMITED"
	codeTimeout          = "TIMEOUT"
	codeUnavailable      = "UNAVAILABLE"
)

// problemDetail is an RFC 9457 response body.
type problemDetail struct {
	Code         string        `json:"code"`
	Detail       string        `json:"detail"`
	Errors       []errorDetail `json:"errors"`
	Allowed      []string      `json:"allowed_actions"`
	CurrentStage string        `json:"current_stage"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps an error response to a domain error. The problem
// code decides the mapping when present; the status code is the fallback.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch pd.Code {
	case codeConditionsNotMet:
		reasons := make([]string, len(pd.Errors))
		for i, e := range pd.Errors {
			reasons[i] = e.Message
		}
		return &domain.TransitionRejectedError{Reasons: reasons}
	case codeNullTerminal:
		reasons := make([]string, len(pd.Errors))
		for i, e := range pd.Errors {
			reasons[i] = e.Message
		}
		return &domain.RejectRefusedError{Stage: pd.CurrentStage, Reasons: reasons}
	case codeStageConflict:
		return &domain.StageConflictError{Actual: pd.CurrentStage}
	case codeActionRestricted:
		return &domain.ActionRestrictedError{Stage: pd.CurrentStage, Allowed: pd.Allowed}
	case codeInvalidAction:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnknownAction)
	case codeUnknownStage:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnknownStage)
	case codeCompanyNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case codeValidationFailed:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case codeForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case codeRateLimited, codeTimeout, codeUnavailable:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail reads an RFC 9457 body. Returns an empty problemDetail
// if the body is absent, of another content type, or malformed.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." prefix so field names match the
// request fields.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
