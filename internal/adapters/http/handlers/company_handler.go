package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glavpro/crm-stages/internal/adapters/http/dto"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// CompanyHandler handles HTTP requests for companies and their funnel.
type CompanyHandler struct {
	service ports.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with the given service port.
func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// ListCompanies handles GET /api/v1/companies.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.ListCompanies(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCompanyListResponse(companies))
}

// CreateCompany handles POST /api/v1/companies.
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateCompany(r.Context(), req.Name, req.CreatedBy)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCompanyResponse(created))
}

// GetCard handles GET /api/v1/companies/{id}.
func (h *CompanyHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	card, err := h.service.GetCard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCardResponse(card))
}

// ListEvents handles GET /api/v1/companies/{id}/events?type=.
func (h *CompanyHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var typ event.Type
	if raw := r.URL.Query().Get("type"); raw != "" {
		if typ, err = event.ParseType(raw); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	events, err := h.service.ListEvents(r.Context(), id, typ)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEventListResponse(events))
}

// RecordEvent handles POST /api/v1/companies/{id}/events.
func (h *CompanyHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	id, manager, ok := writeTarget(w, r)
	if !ok {
		return
	}

	var req dto.RecordEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	e, err := h.service.RecordEvent(r.Context(), id, manager, event.Type(req.Type), req.PayloadMap())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEventResponse(e))
}

// Transition handles POST /api/v1/companies/{id}/transition. Without a
// target_stage the company advances to its next stage.
func (h *CompanyHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, manager, ok := writeTarget(w, r)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	var (
		result *funnel.TransitionResult
		err    error
	)
	if target := req.Target(); target != "" {
		result, err = h.service.TransitionTo(r.Context(), id, manager, target)
	} else {
		result, err = h.service.Advance(r.Context(), id, manager)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransitionResponse(result))
}

// Reject handles POST /api/v1/companies/{id}/reject.
func (h *CompanyHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, manager, ok := writeTarget(w, r)
	if !ok {
		return
	}

	result, err := h.service.Reject(r.Context(), id, manager)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTransitionResponse(result))
}

// ExecuteAction handles POST /api/v1/companies/{id}/actions/{action}.
func (h *CompanyHandler) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	id, manager, ok := writeTarget(w, r)
	if !ok {
		return
	}

	action, err := funnel.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ActionRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	e, err := h.service.ExecuteAction(r.Context(), id, manager, action, req.PayloadMap())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToEventResponse(e))
}

// writeTarget parses the company id and the acting manager of a write.
func writeTarget(w http.ResponseWriter, r *http.Request) (id, manager int64, ok bool) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	manager, err = managerID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return id, manager, true
}
