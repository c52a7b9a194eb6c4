package commands

import (
	"context"
	"time"

	"booking-holds/internal/domain/schedule"
	"booking-holds/internal/usecase/shared"

	"github.com/google/uuid"
)

// conflictScanner decides whether a candidate interval collides with any
// live hold or non-cancelled booking. It only ever runs against a Tx, so both
// scans and the write depending on them share one transaction.
type conflictScanner struct {
	bookingLookback time.Duration
}

func newConflictScanner(bookingLookback time.Duration) conflictScanner {
	return conflictScanner{bookingLookback: bookingLookback}
}

func (s conflictScanner) anyConflict(
	ctx context.Context,
	tx shared.Tx,
	slot schedule.Interval,
	resourceID *uuid.UUID,
	excludeHoldID *uuid.UUID,
	now time.Time,
) (bool, error) {
	held, err := tx.Holds().AnyLiveOverlapping(ctx, slot, resourceID, excludeHoldID, now)
	if err != nil {
		return false, err
	}
	if held {
		return true, nil
	}

	booked, err := tx.Bookings().AnyOverlapping(ctx, slot, resourceID, s.bookingLookback)
	if err != nil {
		return false, err
	}
	return booked, nil
}
