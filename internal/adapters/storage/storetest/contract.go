// Package storetest holds the behavioral contract shared by every store
// adapter. Adapter tests call RunCompanyStoreContract and
// RunEventStoreContract with a factory that builds a fresh store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/glavpro/crm-stages/internal/domain"
	"github.com/glavpro/crm-stages/internal/domain/company"
	"github.com/glavpro/crm-stages/internal/domain/event"
	"github.com/glavpro/crm-stages/internal/domain/funnel"
	"github.com/glavpro/crm-stages/internal/ports"
)

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a Clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current frozen time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Start is the initial time of clocks handed to factories.
var Start = time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

// CompanyFactory builds an empty CompanyStore that reads time from now.
type CompanyFactory func(t *testing.T, now func() time.Time) ports.CompanyStore

// EventFactory builds an empty EventStore that reads time from now.
type EventFactory func(t *testing.T, now func() time.Time) ports.EventStore

// RunCompanyStoreContract verifies a CompanyStore implementation.
func RunCompanyStoreContract(t *testing.T, factory CompanyFactory) {
	t.Helper()
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		clock := NewClock(Start)
		store := factory(t, clock.Now)

		created, err := store.Create(ctx, company.New("Acme", 7))
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, funnel.StageIce, created.StageCode)
		assert.Equal(t, "Ice", created.StageName)
		assert.Equal(t, int64(7), created.CreatedBy)
		assert.True(t, created.CreatedAt.Equal(Start), "CreatedAt = %v", created.CreatedAt)
		assert.True(t, created.UpdatedAt.Equal(Start), "UpdatedAt = %v", created.UpdatedAt)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, created.StageCode, got.StageCode)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		_, err := store.Get(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		empty, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		for _, name := range []string{"A", "B", "C"} {
			_, err := store.Create(ctx, company.New(name, 1))
			require.NoError(t, err)
		}

		list, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].ID, list[i].ID)
		}
		assert.Equal(t, "A", list[0].Name)
	})

	t.Run("UpdateStage", func(t *testing.T) {
		clock := NewClock(Start)
		store := factory(t, clock.Now)
		created, err := store.Create(ctx, company.New("Acme", 1))
		require.NoError(t, err)

		clock.Advance(time.Hour)
		updated, err := store.UpdateStage(ctx, created.ID, funnel.StageIce, funnel.StageTouched, "Touched")
		require.NoError(t, err)
		assert.Equal(t, funnel.StageTouched, updated.StageCode)
		assert.Equal(t, "Touched", updated.StageName)
		assert.True(t, updated.UpdatedAt.Equal(Start.Add(time.Hour)), "UpdatedAt = %v", updated.UpdatedAt)
		assert.True(t, updated.CreatedAt.Equal(Start), "CreatedAt = %v", updated.CreatedAt)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, funnel.StageTouched, got.StageCode)
	})

	t.Run("UpdateStage Conflict", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)
		created, err := store.Create(ctx, company.New("Acme", 1))
		require.NoError(t, err)

		_, err = store.UpdateStage(ctx, created.ID, funnel.StageTouched, funnel.StageAware, "Aware")
		require.ErrorIs(t, err, domain.ErrConflict)

		var conflict *domain.StageConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "Touched", conflict.Expected)
		assert.Equal(t, "Ice", conflict.Actual)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, funnel.StageIce, got.StageCode, "conflicting update must not change the stage")
	})

	t.Run("UpdateStage Non-Existent", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		_, err := store.UpdateStage(ctx, 404, funnel.StageIce, funnel.StageTouched, "Touched")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateStage Race", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)
		created, err := store.Create(ctx, company.New("Acme", 1))
		require.NoError(t, err)

		const writers = 8
		var (
			mu        sync.Mutex
			wins      int
			conflicts int
		)
		var g errgroup.Group
		for range writers {
			g.Go(func() error {
				_, err := store.UpdateStage(ctx, created.ID, funnel.StageIce, funnel.StageTouched, "Touched")
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				case errors.Is(err, domain.ErrConflict):
					conflicts++
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, 1, wins, "exactly one writer must win")
		assert.Equal(t, writers-1, conflicts)
	})
}

// RunEventStoreContract verifies an EventStore implementation.
func RunEventStoreContract(t *testing.T, factory EventFactory) {
	t.Helper()
	ctx := context.Background()

	t.Run("Append", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		payload := map[string]any{
			"scheduled_at": "2026-04-05T10:00:00Z",
			"seats":        3,
			"nested":       map[string]any{"ok": true},
		}
		e, err := store.Append(ctx, 1, 5, event.TypeDemoPlanned, payload)
		require.NoError(t, err)
		assert.Positive(t, e.ID)
		assert.Equal(t, int64(1), e.CompanyID)
		assert.Equal(t, int64(5), e.ManagerID)
		assert.Equal(t, event.TypeDemoPlanned, e.Type)
		assert.True(t, e.CreatedAt.Equal(Start), "CreatedAt = %v", e.CreatedAt)

		payload["seats"] = 100

		list, err := store.ListByCompany(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, e.ID, list[0].ID)
		assert.Equal(t, "2026-04-05T10:00:00Z", list[0].Payload["scheduled_at"])
		assert.Equal(t, "3", fmt.Sprint(list[0].Payload["seats"]), "stored payload must not alias the caller's map")
		assert.Equal(t, map[string]any{"ok": true}, list[0].Payload["nested"])
	})

	t.Run("Nil Payload", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		_, err := store.Append(ctx, 1, 5, event.TypeLPRConversation, nil)
		require.NoError(t, err)

		list, err := store.ListByCompany(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Payload)
	})

	t.Run("Unique Increasing IDs", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		var last int64
		for i := range 5 {
			e, err := store.Append(ctx, int64(i%2+1), 1, event.TypeContactAttempt, nil)
			require.NoError(t, err)
			assert.Greater(t, e.ID, last)
			last = e.ID
		}
	})

	t.Run("Newest First", func(t *testing.T) {
		clock := NewClock(Start)
		store := factory(t, clock.Now)

		var ids []int64
		for range 4 {
			e, err := store.Append(ctx, 1, 1, event.TypeContactAttempt, nil)
			require.NoError(t, err)
			ids = append(ids, e.ID)
			clock.Advance(time.Minute)
		}

		list, err := store.ListByCompany(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 4)
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "events out of order at %d", i)
		}
		assert.Equal(t, ids[3], list[0].ID)
		assert.Equal(t, ids[0], list[3].ID)
	})

	t.Run("Equal Timestamps Later Insert First", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		first, err := store.Append(ctx, 1, 1, event.TypeContactAttempt, nil)
		require.NoError(t, err)
		second, err := store.Append(ctx, 1, 1, event.TypeLPRConversation, nil)
		require.NoError(t, err)

		list, err := store.ListByCompany(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})

	t.Run("Filter By Type", func(t *testing.T) {
		clock := NewClock(Start)
		store := factory(t, clock.Now)

		types := []event.Type{
			event.TypeContactAttempt, event.TypeLPRConversation, event.TypeContactAttempt,
			event.TypeStageTransition, event.TypeContactAttempt,
		}
		for _, typ := range types {
			_, err := store.Append(ctx, 1, 1, typ, nil)
			require.NoError(t, err)
			clock.Advance(time.Second)
		}
		_, err := store.Append(ctx, 2, 1, event.TypeContactAttempt, nil)
		require.NoError(t, err)

		all, err := store.ListByCompany(ctx, 1)
		require.NoError(t, err)

		filtered, err := store.ListByCompanyAndType(ctx, 1, event.TypeContactAttempt)
		require.NoError(t, err)
		require.Len(t, filtered, 3)

		var want []int64
		for _, e := range all {
			if e.Type == event.TypeContactAttempt {
				want = append(want, e.ID)
			}
		}
		var got []int64
		for _, e := range filtered {
			assert.Equal(t, int64(1), e.CompanyID)
			got = append(got, e.ID)
		}
		assert.Equal(t, want, got, "filtered list must keep the unfiltered order")

		none, err := store.ListByCompanyAndType(ctx, 1, event.TypeInvoiceCreated)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Unknown Company", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		list, err := store.ListByCompany(ctx, 12345)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Concurrent Appends", func(t *testing.T) {
		store := factory(t, NewClock(Start).Now)

		const n = 20
		var g errgroup.Group
		for i := range n {
			g.Go(func() error {
				_, err := store.Append(ctx, int64(i%3+1), 1, event.TypeContactAttempt, nil)
				return err
			})
		}
		require.NoError(t, g.Wait())

		seen := make(map[int64]bool)
		total := 0
		for companyID := int64(1); companyID <= 3; companyID++ {
			list, err := store.ListByCompany(ctx, companyID)
			require.NoError(t, err)
			for _, e := range list {
				assert.False(t, seen[e.ID], "duplicate event id %d", e.ID)
				seen[e.ID] = true
			}
			total += len(list)
		}
		assert.Equal(t, n, total)
	})
}
