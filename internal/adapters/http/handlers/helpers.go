package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/glavpro/crm-stages/internal/adapters/http/dto"
	"github.com/glavpro/crm-stages/internal/domain"
)

// ManagerIDHeader identifies the manager performing a write.
const ManagerIDHeader = "X-Manager-ID"

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a positive integer"},
		}
	}
	return id, nil
}

// managerID reads the acting manager from the X-Manager-ID header.
func managerID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(ManagerIDHeader))
	if raw == "" {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"header." + ManagerIDHeader: domain.MsgRequired},
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"header." + ManagerIDHeader: "must be a positive integer"},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. When optional is set an empty body leaves dst
// untouched. On failure it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	dto.WriteErrorResponse(w, r, &domain.ValidationError{
		Fields: map[string]string{"body": "invalid JSON"},
	})
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	return decodeInto(w, r, dst, false)
}

// decodeOptional is decodeAndValidate for endpoints whose body may be empty.
func decodeOptional[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	return decodeInto(w, r, dst, true)
}

func decodeInto[T validatable](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	if !decodeJSONBody(w, r, dst, optional) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
