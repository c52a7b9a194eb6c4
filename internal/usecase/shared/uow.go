package shared

import (
	"context"
	"time"

	"booking-holds/internal/domain/booking"
	"booking-holds/internal/domain/hold"
	"booking-holds/internal/domain/schedule"

	"github.com/google/uuid"
)

// UnitOfWork is the persistence boundary. The decisive conflict scans and the
// writes that depend on them always run through Within so they share one
// transaction; a read-then-write gap here is the race this service exists to
// close.
type UnitOfWork interface {
	// Within: full transaction at serializable isolation for write paths
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the explicit read/write-set available inside one transaction.
type Tx interface {
	Holds() HoldRepository
	Bookings() BookingRepository
	Services() ServiceCatalog
}

type HoldRepository interface {
	// FindByID returns (nil, nil) when no record exists at the id.
	FindByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error)
	// FindByIDForUpdate row-locks the hold so extend/finalize cannot race.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*hold.Hold, error)
	// AnyLiveOverlapping scans active, unexpired holds intersecting the slot,
	// optionally filtered by resource and skipping excludeID.
	AnyLiveOverlapping(ctx context.Context, slot schedule.Interval, resourceID, excludeID *uuid.UUID, now time.Time) (bool, error)
	// Upsert writes a fresh hold, replacing any dead record at the same id.
	Upsert(ctx context.Context, h *hold.Hold) error
	Update(ctx context.Context, h *hold.Hold) error
	// MarkReleased unconditionally releases; matching zero rows is not an error.
	MarkReleased(ctx context.Context, id uuid.UUID, now time.Time) error
}

type BookingRepository interface {
	// AnyOverlapping scans non-cancelled bookings whose start falls within
	// lookback before the slot; ends are computed from start+duration.
	AnyOverlapping(ctx context.Context, slot schedule.Interval, resourceID *uuid.UUID, lookback time.Duration) (bool, error)
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}

// ServiceSnapshot carries the authoritative catalog price and duration for
// one service.
type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	PriceCents      int64
	DurationMinutes int32
}

type ServiceCatalog interface {
	// FindByIDs preserves input order and fails NOT_FOUND when any id is
	// missing.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]ServiceSnapshot, error)
	// FindDefaultForResource resolves the fallback service when a finalize
	// request names none.
	FindDefaultForResource(ctx context.Context, resourceID *uuid.UUID) (*ServiceSnapshot, error)
}
