// Package company defines the company aggregate that moves through the funnel.
package company

import (
	"fmt"
	"strings"
	"time"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

// Company is a sales opportunity. StageCode is only ever changed through a
// compare-and-swap stage update.
type Company struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	StageCode funnel.Stage `json:"stage_code"`
	StageName string       `json:"stage_name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	CreatedBy int64        `json:"created_by"`
}

// New returns a company positioned at the first funnel stage.
func New(name string, createdBy int64) *Company {
	return &Company{
		Name:      strings.TrimSpace(name),
		StageCode: funnel.StageIce,
		StageName: funnel.Name(funnel.StageIce),
		CreatedBy: createdBy,
	}
}

// Validate checks business rules for the Company entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Company) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if c.CreatedBy <= 0 {
		fields["created_by"] = fmt.Sprintf("must be positive, got %d", c.CreatedBy)
	}
	if !c.StageCode.IsValid() {
		fields["stage_code"] = fmt.Sprintf("invalid: %q", c.StageCode)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
