package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glavpro/crm-stages/internal/app/fanout"
	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
)

const (
	defaultConflictRetries = 3
	defaultWorkers         = 4
)

// advanceOutcome is the printed result of moving one company.
type advanceOutcome struct {
	CompanyID int64        `json:"company_id"`
	Stage     funnel.Stage `json:"stage,omitempty"`
	Attempts  int          `json:"attempts"`
	Error     string       `json:"error,omitempty"`
	Reasons   []string     `json:"reasons,omitempty"`
}

func (c *cli) advanceCmd() *cobra.Command {
	var (
		to      string
		retries int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "advance ID [ID...]",
		Short: "Move companies one stage forward, or to --to",
		Long: "Moves each company to its next stage, or to the stage named by --to " +
			"(the next stage or Null). A transition that loses a race with another " +
			"writer is re-read and retried up to --retries times. Several IDs are " +
			"processed concurrently.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := c.requireManager()
			if err != nil {
				return err
			}
			ids, err := parseCompanyIDs(args)
			if err != nil {
				return err
			}
			var target funnel.Stage
			if to != "" {
				if target, err = funnel.ParseStage(to); err != nil {
					return err
				}
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			results := fanout.Run(ctx, workers, ids, func(ctx context.Context, id int64) (advanceOutcome, error) {
				return c.advanceOne(ctx, id, manager, target, retries)
			})

			outcomes := make([]advanceOutcome, len(results))
			for i, r := range results {
				outcomes[i] = r.Value
				outcomes[i].CompanyID = ids[i]
				if r.Err != nil {
					outcomes[i].Error = r.Err.Error()
					var (
						rejected *domain.TransitionRejectedError
						refused  *domain.RejectRefusedError
					)
					switch {
					case errors.As(r.Err, &rejected):
						outcomes[i].Reasons = rejected.Reasons
					case errors.As(r.Err, &refused):
						outcomes[i].Reasons = refused.Reasons
					}
				}
			}
			if err := c.printJSON(outcomes); err != nil {
				return err
			}
			return fanout.Join(ids, results, func(id int64) string {
				return "company " + strconv.FormatInt(id, 10)
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target stage (the next stage or Null)")
	cmd.Flags().IntVar(&retries, "retries", defaultConflictRetries, "retries after a stage conflict")
	cmd.Flags().IntVar(&workers, "workers", defaultWorkers, "companies moved concurrently")
	return cmd
}

// advanceOne transitions a single company. On a stage conflict it re-reads
// the card; if a concurrent writer already reached the requested target the
// move counts as done, otherwise it tries again.
func (c *cli) advanceOne(
	ctx context.Context, id, manager int64, target funnel.Stage, retries int,
) (advanceOutcome, error) {
	out := advanceOutcome{CompanyID: id}

	for attempt := 0; ; attempt++ {
		out.Attempts = attempt + 1

		result, err := c.client.Transition(ctx, id, manager, target)
		if err == nil {
			out.Stage = result.NewStage
			return out, nil
		}
		if !errors.Is(err, domain.ErrConflict) || attempt >= retries {
			return out, err
		}

		card, err := c.client.GetCard(ctx, id)
		if err != nil {
			return out, fmt.Errorf("re-reading after conflict: %w", err)
		}
		if target != "" && card.Company.StageCode == target {
			out.Stage = target
			return out, nil
		}
	}
}
