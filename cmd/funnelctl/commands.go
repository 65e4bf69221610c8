package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

func (c *cli) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Register a company at the first funnel stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := c.requireManager()
			if err != nil {
				return err
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			created, err := c.client.CreateCompany(ctx, args[0], manager)
			if err != nil {
				return fmt.Errorf("creating company: %w", err)
			}
			return c.printJSON(created)
		},
	}
}

func (c *cli) cardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card ID",
		Short: "Show the company card: stage, available actions, and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCompanyID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			card, err := c.client.GetCard(ctx, id)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			return c.printJSON(cardView{
				Company:          card.Company,
				Stage:            card.Stage.Code,
				StageName:        card.Stage.Name,
				MLSCode:          card.Stage.MLSCode,
				Instruction:      card.Instruction,
				ExitCondition:    card.Stage.ExitCondition,
				AvailableActions: card.AvailableActions,
				Events:           card.Events,
			})
		},
	}
}

func (c *cli) listEventsCmd() *cobra.Command {
	var typ string
	cmd := &cobra.Command{
		Use:   "events ID",
		Short: "List a company's events, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCompanyID(args[0])
			if err != nil {
				return err
			}
			var filter event.Type
			if typ != "" {
				if filter, err = event.ParseType(typ); err != nil {
					return err
				}
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			events, err := c.client.ListEvents(ctx, id, filter)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			return c.printJSON(events)
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "only events of this type")
	return cmd
}

func (c *cli) recordCmd() *cobra.Command {
	var payload string
	cmd := &cobra.Command{
		Use:   "record ID TYPE",
		Short: "Record an observation event such as lpr_conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := c.requireManager()
			if err != nil {
				return err
			}
			id, err := parseCompanyID(args[0])
			if err != nil {
				return err
			}
			typ, err := event.ParseType(args[1])
			if err != nil {
				return err
			}
			p, err := parsePayload(payload)
			if err != nil {
				return err
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			e, err := c.client.RecordEvent(ctx, id, manager, typ, p)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			return c.printJSON(e)
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "event payload as a JSON object")
	return cmd
}

func (c *cli) rejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Move a company to Null",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := c.requireManager()
			if err != nil {
				return err
			}
			id, err := parseCompanyID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			result, err := c.client.Reject(ctx, id, manager)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			return c.printJSON(advanceOutcome{CompanyID: id, Stage: result.NewStage, Attempts: 1})
		},
	}
}

func (c *cli) actionCmd() *cobra.Command {
	var payload string
	cmd := &cobra.Command{
		Use:   "action ID ACTION",
		Short: "Run an action and record the event it produces",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := c.requireManager()
			if err != nil {
				return err
			}
			id, err := parseCompanyID(args[0])
			if err != nil {
				return err
			}
			action, err := funnel.ParseAction(args[1])
			if err != nil {
				return err
			}
			p, err := parsePayload(payload)
			if err != nil {
				return err
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			e, err := c.client.ExecuteAction(ctx, id, manager, action, p)
			if err != nil {
				return fmt.Errorf("company %d: %w", id, err)
			}
			return c.printJSON(e)
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "action payload as a JSON object")
	return cmd
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable and ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checker, ok := c.client.(ports.HealthChecker)
			if !ok {
				return errors.New("client does not support health checks")
			}
			ctx, cancel := c.deadline(cmd)
			defer cancel()

			if err := checker.HealthCheck(ctx); err != nil {
				return err
			}
			_, err := fmt.Fprintln(c.out, "ok")
			return err
		},
	}
}

// cardView is the printed form of a company card.
type cardView struct {
	Company          company.Company `json:"company"`
	Stage            funnel.Stage    `json:"stage"`
	StageName        string          `json:"stage_name"`
	MLSCode          string          `json:"mls_code"`
	Instruction      string          `json:"instruction"`
	ExitCondition    *string         `json:"exit_condition"`
	AvailableActions []funnel.Action `json:"available_actions"`
	Events           []event.Event   `json:"events"`
}
