package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/glavpro/crm-stages/internal/domain"
)

// Stable error codes carried in the "code" member of every problem response.
// Clients branch on these rather than on status or detail text.
const (
	CodeCompanyNotFound   = "COMPANY_NOT_FOUND"
	CodeConditionsNotMet  = "TRANSITION_CONDITIONS_NOT_MET"
	CodeNullStageTerminal = "NULL_STAGE_TERMINAL"
	CodeStageConflict     = "STAGE_CONFLICT"
	CodeActionRestricted  = "ACTION_RESTRICTED"
	CodeInvalidAction     = "INVALID_ACTION"
	CodeUnknownStage      = "UNKNOWN_STAGE"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeForbidden         = "FORBIDDEN"
	CodeUnavailable       = "UNAVAILABLE"
	CodeInternal          = "INTERNAL"
	CodeRateLimited       = "RATE_LIMITED"
	CodeTimeout           = "TIMEOUT"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`

	// Allowed lists the permitted actions on ACTION_RESTRICTED.
	Allowed []string `json:"allowed_actions,omitempty"`
	// CurrentStage is the stored stage on STAGE_CONFLICT, ACTION_RESTRICTED
	// and NULL_STAGE_TERMINAL.
	CurrentStage string `json:"current_stage,omitempty"`
}

// ErrorDetail represents a single field-level validation error or a single
// transition rejection reason within an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = "internal error"
	}

	var (
		verr       *domain.ValidationError
		rejected   *domain.TransitionRejectedError
		refused    *domain.RejectRefusedError
		restricted *domain.ActionRestrictedError
		conflict   *domain.StageConflictError
	)
	switch {
	case errors.As(err, &verr):
		resp.Errors = validationFieldsToDetails(verr.Fields)
	case errors.As(err, &rejected):
		resp.Errors = make([]ErrorDetail, len(rejected.Reasons))
		for i, reason := range rejected.Reasons {
			resp.Errors[i] = ErrorDetail{Location: "transition", Message: reason}
		}
	case errors.As(err, &refused):
		resp.Errors = make([]ErrorDetail, len(refused.Reasons))
		for i, reason := range refused.Reasons {
			resp.Errors[i] = ErrorDetail{Location: "transition", Message: reason}
		}
		resp.CurrentStage = refused.Stage
	case errors.As(err, &restricted):
		resp.Allowed = append([]string{}, restricted.Allowed...)
		resp.CurrentStage = restricted.Stage
	case errors.As(err, &conflict):
		resp.CurrentStage = conflict.Actual
	}

	return resp
}

// NewProblem builds a problem response that does not originate from a
// domain error, such as a rate limit or a request timeout.
func NewProblem(r *http.Request, status int, code, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes a prepared problem response.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain errors to an HTTP status and a stable code.
// Typed errors are matched before the broader sentinels they wrap.
func domainErrorToStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrConditionsNotMet):
		return http.StatusUnprocessableEntity, CodeConditionsNotMet
	case errors.Is(err, domain.ErrAlreadyTerminal):
		return http.StatusConflict, CodeNullStageTerminal
	case errors.Is(err, domain.ErrActionRestricted):
		return http.StatusForbidden, CodeActionRestricted
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, CodeInvalidAction
	case errors.Is(err, domain.ErrUnknownStage):
		return http.StatusBadRequest, CodeUnknownStage
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, CodeValidationFailed
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeCompanyNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CodeStageConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway, CodeUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries. Fields without a location prefix are body fields.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := field
		if !strings.Contains(field, ".") {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{
			Location: loc,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
