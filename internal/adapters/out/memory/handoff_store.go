// Package memory provides the in-process handoff store used when a single
// instance serves the whole workflow.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/errs"
)

type entry struct {
	handoff   order.Handoff
	expiresAt time.Time
}

// HandoffStore keeps handoffs in a map guarded by a mutex. Handoffs are
// immutable values, so they are stored as they are.
type HandoffStore struct {
	mu      sync.Mutex
	entries map[kernel.UUID]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewHandoffStore creates an empty store. now is the clock used for expiry;
// pass time.Now outside of tests.
func NewHandoffStore(ttl time.Duration, now func() time.Time) *HandoffStore {
	return &HandoffStore{
		entries: make(map[kernel.UUID]entry),
		ttl:     ttl,
		now:     now,
	}
}

func (s *HandoffStore) Put(ctx context.Context, handoff order.Handoff) (kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}
	if handoff == nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError("handoff")
	}
	if err := handoff.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	token := kernel.NewUUID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{handoff: handoff, expiresAt: s.now().Add(s.ttl)}

	return token, nil
}

func (s *HandoffStore) Take(ctx context.Context, token kernel.UUID, stage order.Stage) (order.Handoff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := token.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, errs.NewObjectNotFoundError("handoff", token.String())
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, token)
		return nil, errs.NewObjectNotFoundError("handoff", token.String())
	}
	if e.handoff.Stage() != stage {
		return nil, errs.NewObjectNotFoundErrorWithCause(
			"handoff", token.String(),
			fmt.Errorf("handoff is at stage %s, expected %s", e.handoff.Stage(), stage),
		)
	}

	delete(s.entries, token)
	return e.handoff, nil
}

func (s *HandoffStore) DeleteExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored handoffs, expired ones included.
func (s *HandoffStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
