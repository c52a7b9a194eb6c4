package commands

import (
	"context"
	"time"

	"booking-holds/internal/domain/hold"
	"booking-holds/internal/infra"
	"booking-holds/internal/pkg/clock"
	"booking-holds/internal/pkg/config"
	"booking-holds/internal/pkg/errs"
	"booking-holds/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingFields           = errs.New("missing required fields")
	ErrStartInPast             = errs.New("start must be now or in the future")
	ErrOverlap                 = errs.New("interval overlaps a live hold or booking")
	ErrHoldNotFound            = errs.New("hold not found")
	ErrHoldNotActive           = errs.New("hold is not active")
	ErrHoldExpired             = errs.New("hold expired")
	ErrHoldAlreadyExtended     = errs.New("hold already extended")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// HoldSnapshot is the command-side view of a hold returned to callers.
type HoldSnapshot struct {
	ID         uuid.UUID
	ResourceID *uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	Extended   bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

type CreateHoldParams struct {
	ResourceID      *uuid.UUID
	Start           time.Time
	DurationMinutes int
	SessionToken    string
	OwnerUserID     *uuid.UUID
}

type CreateHoldResult struct {
	Hold HoldSnapshot
	// Replayed marks an idempotent replay of an earlier identical request.
	Replayed bool
}

type ExtendHoldParams struct {
	HoldID       uuid.UUID
	ExtraSeconds int
}

type HoldCommands interface {
	CreateHold(ctx context.Context, p CreateHoldParams) (*CreateHoldResult, error)
	ReleaseHold(ctx context.Context, holdID uuid.UUID) error
	ExtendHold(ctx context.Context, p ExtendHoldParams) error
}

type holdCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	cfg     config.HoldConfig
	scanner conflictScanner
}

func NewHoldCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.HoldConfig) HoldCommands {
	return &holdCommandsImpl{
		uow:     uow,
		clock:   clk,
		cfg:     cfg,
		scanner: newConflictScanner(cfg.BookingLookback),
	}
}

func (h *holdCommandsImpl) CreateHold(ctx context.Context, p CreateHoldParams) (*CreateHoldResult, error) {
	if p.SessionToken == "" || p.Start.IsZero() || p.DurationMinutes <= 0 {
		return nil, ErrMissingFields
	}

	now := h.clock.Now()
	fresh, err := hold.New(hold.NewHoldParams{
		ResourceID:         p.ResourceID,
		Start:              p.Start,
		Duration:           time.Duration(p.DurationMinutes) * time.Minute,
		SessionToken:       p.SessionToken,
		OwnerUserID:        p.OwnerUserID,
		Now:                now,
		PastStartTolerance: h.cfg.PastStartTolerance,
		LeaseDuration:      h.cfg.LeaseDuration,
	})
	if err != nil {
		switch err {
		case hold.ErrStartInPast:
			return nil, ErrStartInPast
		default:
			return nil, errs.Mark(err, ErrMissingFields)
		}
	}

	var result *CreateHoldResult
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Holds().FindByID(ctx, fresh.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if existing != nil && existing.IsLive(now) {
			// Identical retry while the lease is live: hand back the same
			// record, no new write.
			result = &CreateHoldResult{Hold: snapshotOf(existing), Replayed: true}
			return nil
		}

		conflict, err := h.scanner.anyConflict(ctx, tx, fresh.Slot(), p.ResourceID, nil, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrOverlap
		}

		if err := tx.Holds().Upsert(ctx, fresh); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result = &CreateHoldResult{Hold: snapshotOf(fresh)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReleaseHold makes the hold inert immediately regardless of its prior
// status, and succeeds even when no record matches: repeating it changes
// nothing.
func (h *holdCommandsImpl) ReleaseHold(ctx context.Context, holdID uuid.UUID) error {
	now := h.clock.Now()
	err := h.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Holds().MarkReleased(ctx, holdID, now)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (h *holdCommandsImpl) ExtendHold(ctx context.Context, p ExtendHoldParams) error {
	extra := p.ExtraSeconds
	if extra <= 0 {
		extra = h.cfg.ExtendSeconds
	}

	return h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Re-read under a row lock so two extends cannot both see
		// extended=false.
		current, err := tx.Holds().FindByIDForUpdate(ctx, p.HoldID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHoldNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := current.Extend(time.Duration(extra) * time.Second); err != nil {
			switch err {
			case hold.ErrAlreadyExtended:
				return ErrHoldAlreadyExtended
			default:
				return ErrHoldNotActive
			}
		}

		if err := tx.Holds().Update(ctx, current); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func snapshotOf(h *hold.Hold) HoldSnapshot {
	return HoldSnapshot{
		ID:         h.ID(),
		ResourceID: h.ResourceID(),
		Start:      h.Slot().Start(),
		End:        h.Slot().End(),
		Status:     string(h.Status()),
		Extended:   h.Extended(),
		CreatedAt:  h.CreatedAt(),
		ExpiresAt:  h.ExpiresAt(),
	}
}
