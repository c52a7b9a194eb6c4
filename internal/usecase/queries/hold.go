package queries

import (
	"context"
	"time"

	"booking-holds/internal/infra"
	"booking-holds/internal/pkg/clock"
	"booking-holds/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHoldNotFound = errs.New("hold not found")

// HoldView is the read-side projection of a hold. Expired reports the lazy
// expiry judgement: nothing is ever written when a lease lapses.
type HoldView struct {
	ID         uuid.UUID
	ResourceID *uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	Extended   bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Expired    bool
}

type HoldReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HoldView, error)
}

type HoldQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HoldView, error)
}

type holdQueriesImpl struct {
	store HoldReadStore
	clock clock.Clock
}

func NewHoldQueries(store HoldReadStore, clk clock.Clock) HoldQueries {
	return &holdQueriesImpl{store: store, clock: clk}
}

func (q *holdQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HoldView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHoldNotFound
		}
		return nil, errs.Wrap(err, "failed to load hold")
	}
	view.Expired = !view.ExpiresAt.After(q.clock.Now())
	return view, nil
}
