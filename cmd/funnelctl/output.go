package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/glavpro/crm-stages/internal/domain/event"
)

// printJSON writes v to the command output as indented JSON.
func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func parseCompanyID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid company id %q", raw)
	}
	return id, nil
}

func parseCompanyIDs(raw []string) ([]int64, error) {
	ids := make([]int64, len(raw))
	for i, r := range raw {
		id, err := parseCompanyID(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// parsePayload decodes a --payload flag. An empty flag is an empty object.
func parsePayload(raw string) (map[string]any, error) {
	p, err := event.DecodePayload([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid --payload: %w", err)
	}
	return p, nil
}
