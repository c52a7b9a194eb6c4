package repository

import (
	"context"
	"errors"
	"time"

	"booking-holds/internal/domain/booking"
	"booking-holds/internal/domain/schedule"
	"booking-holds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// AnyOverlapping checks non-cancelled bookings against the candidate slot.
// Only bookings starting within the lookback window before the slot are
// considered; the window must cover the longest catalog duration.
func (r *BookingRepository) AnyOverlapping(
	ctx context.Context,
	slot schedule.Interval,
	resourceID *uuid.UUID,
	lookback time.Duration,
) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE status <> 'cancelled'
	  AND start_at >= $1
	  AND start_at < $2
	  AND start_at + make_interval(mins => duration_minutes) > $3
	  AND ($4::uuid IS NULL OR resource_id = $4)
)`

	cutoff := slot.Start().Add(-lookback)
	var found bool
	err := r.db.QueryRow(ctx, query, cutoff, slot.End(), slot.Start(), resourceID).Scan(&found)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan bookings", err)
	}
	return found, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const stmt = `
INSERT INTO bookings (id, hold_id, resource_id, service_id, customer_id, start_at, duration_minutes, status, price_cents, customer_name, customer_email, customer_phone, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	contact := b.Contact()
	_, err := r.db.Exec(ctx, stmt,
		b.ID(),
		b.HoldID(),
		b.ResourceID(),
		b.ServiceID(),
		b.CustomerID(),
		b.Start(),
		int32(b.Duration()/time.Minute),
		string(b.Status()),
		b.PriceCents(),
		contact.Name,
		contact.Email,
		contact.Phone,
		b.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The unique index on hold_id backstops double-finalize.
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "booking already exists for hold", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return b.ID(), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
