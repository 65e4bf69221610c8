package funnelapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/platform/httpclient"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.FunnelClient  = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client implements [ports.FunnelClient] against a running funnel API. The
// underlying [httpclient.Client] provides circuit breaking, rate limiting,
// retries, and tracing for every call.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through client. The
// client's BaseURL should point at the API root (e.g. "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	req := NewRequester(client, logger)
	return &Client{req: req, logger: req.logger}
}

// CreateCompany sends POST /api/v1/companies.
func (c *Client) CreateCompany(ctx context.Context, name string, createdBy int64) (*company.Company, error) {
	body := createCompanyRequest{Name: name, CreatedBy: createdBy}

	var dto companyDTO
	if err := c.req.Do(managerCtx(ctx, createdBy), http.MethodPost, "/api/v1/companies", http.StatusCreated, body, &dto); err != nil {
		return nil, err
	}
	out := toDomainCompany(&dto)
	return &out, nil
}

// GetCard fetches GET /api/v1/companies/{id}.
func (c *Client) GetCard(ctx context.Context, id int64) (*ports.CompanyCard, error) {
	var dto cardDTO
	if err := c.req.Do(ctx, http.MethodGet, companyPath(id, ""), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return toDomainCard(&dto), nil
}

// Transition sends POST /api/v1/companies/{id}/transition. An empty target
// asks the server for the next stage.
func (c *Client) Transition(ctx context.Context, id, managerID int64, target funnel.Stage) (*funnel.TransitionResult, error) {
	body := transitionRequest{TargetStage: target.String()}

	var dto transitionDTO
	if err := c.req.Do(managerCtx(ctx, managerID), http.MethodPost, companyPath(id, "/transition"), http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	return toDomainTransition(&dto), nil
}

// Reject sends POST /api/v1/companies/{id}/reject.
func (c *Client) Reject(ctx context.Context, id, managerID int64) (*funnel.TransitionResult, error) {
	var dto transitionDTO
	if err := c.req.Do(managerCtx(ctx, managerID), http.MethodPost, companyPath(id, "/reject"), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return toDomainTransition(&dto), nil
}

// ExecuteAction sends POST /api/v1/companies/{id}/actions/{action}.
func (c *Client) ExecuteAction(
	ctx context.Context, id, managerID int64, action funnel.Action, payload map[string]any,
) (*event.Event, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	path := companyPath(id, "/actions/"+url.PathEscape(action.String()))

	var out event.Event
	if err := c.req.Do(managerCtx(ctx, managerID), http.MethodPost, path, http.StatusCreated, actionRequest{Payload: payload}, &out); err != nil {
		var restricted *domain.ActionRestrictedError
		if errors.As(err, &restricted) {
			restricted.Action = action.String()
		}
		return nil, err
	}
	return &out, nil
}

// RecordEvent sends POST /api/v1/companies/{id}/events.
func (c *Client) RecordEvent(
	ctx context.Context, id, managerID int64, typ event.Type, payload map[string]any,
) (*event.Event, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	body := recordEventRequest{Type: typ.String(), Payload: payload}

	var out event.Event
	if err := c.req.Do(managerCtx(ctx, managerID), http.MethodPost, companyPath(id, "/events"), http.StatusCreated, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents fetches GET /api/v1/companies/{id}/events, filtered by typ
// unless it is empty.
func (c *Client) ListEvents(ctx context.Context, id int64, typ event.Type) ([]event.Event, error) {
	path := companyPath(id, "/events")
	if typ != "" {
		path += "?" + url.Values{"type": {typ.String()}}.Encode()
	}

	var dto eventListDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	if dto.Events == nil {
		return []event.Event{}, nil
	}
	return dto.Events, nil
}

func companyPath(id int64, suffix string) string {
	return fmt.Sprintf("/api/v1/companies/%d%s", id, suffix)
}

func managerCtx(ctx context.Context, managerID int64) context.Context {
	return httpclient.WithManagerID(ctx, managerID)
}
