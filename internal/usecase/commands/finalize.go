package commands

import (
	"context"
	"time"

	"booking-holds/internal/domain/booking"
	"booking-holds/internal/domain/hold"
	"booking-holds/internal/infra"
	"booking-holds/internal/pkg/clock"
	"booking-holds/internal/pkg/config"
	"booking-holds/internal/pkg/errs"
	"booking-holds/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

type FinalizeBookingParams struct {
	HoldID     uuid.UUID
	Customer   CustomerInfo
	CustomerID *uuid.UUID
	// PriceCents is informational only; the stored price always comes from
	// the catalog.
	PriceCents *int64
	ServiceIDs []uuid.UUID
}

type FinalizeBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	FinalizeBooking(ctx context.Context, p FinalizeBookingParams) (*FinalizeBookingResult, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	scanner conflictScanner
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.HoldConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		clock:   clk,
		scanner: newConflictScanner(cfg.BookingLookback),
	}
}

func (b *bookingCommandsImpl) FinalizeBooking(ctx context.Context, p FinalizeBookingParams) (*FinalizeBookingResult, error) {
	if p.HoldID == uuid.Nil {
		return nil, ErrMissingFields
	}

	// Expiry is judged from this single instant for the whole transaction.
	now := b.clock.Now()

	var result *FinalizeBookingResult
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		held, err := tx.Holds().FindByIDForUpdate(ctx, p.HoldID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHoldNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if held.Status() != hold.StatusActive {
			return errs.Mark(errs.New("hold status is "+string(held.Status())), ErrHoldNotActive)
		}
		if held.IsExpired(now) {
			return ErrHoldExpired
		}

		// Time has passed since the hold was created; someone else may have
		// landed a conflicting hold or booking since. Re-check, skipping this
		// hold's own row.
		excludeID := held.ID()
		conflict, err := b.scanner.anyConflict(ctx, tx, held.Slot(), held.ResourceID(), &excludeID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrOverlap
		}

		priceCents, duration, primaryServiceID, err := b.resolveCatalog(ctx, tx, p.ServiceIDs, held.ResourceID())
		if err != nil {
			return err
		}

		// The identity bound at creation is more trustworthy than one
		// supplied at finalize time.
		customerID := held.OwnerUserID()
		if customerID == nil {
			customerID = p.CustomerID
		}

		newBooking, err := booking.New(booking.NewBookingParams{
			HoldID:     held.ID(),
			ResourceID: held.ResourceID(),
			ServiceID:  primaryServiceID,
			CustomerID: customerID,
			Start:      held.Slot().Start(),
			Duration:   duration,
			PriceCents: priceCents,
			Contact: booking.ContactSnapshot{
				Name:  p.Customer.Name,
				Email: p.Customer.Email,
				Phone: p.Customer.Phone,
			},
			Now: now,
		})
		if err != nil {
			return errs.Mark(err, ErrMissingFields)
		}

		bookingID, err := tx.Bookings().Create(ctx, newBooking)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := held.Finalize(now); err != nil {
			return ErrHoldNotActive
		}
		if err := tx.Holds().Update(ctx, held); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &FinalizeBookingResult{BookingID: bookingID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveCatalog returns the authoritative summed price and duration. A
// finalize naming no services falls back to the default service of the hold's
// resource.
func (b *bookingCommandsImpl) resolveCatalog(
	ctx context.Context,
	tx shared.Tx,
	serviceIDs []uuid.UUID,
	resourceID *uuid.UUID,
) (priceCents int64, duration time.Duration, primaryServiceID *uuid.UUID, err error) {
	var services []shared.ServiceSnapshot

	if len(serviceIDs) > 0 {
		services, err = tx.Services().FindByIDs(ctx, serviceIDs)
	} else {
		var fallback *shared.ServiceSnapshot
		fallback, err = tx.Services().FindDefaultForResource(ctx, resourceID)
		if fallback != nil {
			services = []shared.ServiceSnapshot{*fallback}
		}
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, 0, nil, ErrServiceNotFound
		}
		return 0, 0, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(services) == 0 {
		return 0, 0, nil, ErrServiceNotFound
	}

	for _, svc := range services {
		priceCents += svc.PriceCents
		duration += time.Duration(svc.DurationMinutes) * time.Minute
	}
	// Single-service-shaped consumers read just the first id.
	primary := services[0].ID
	return priceCents, duration, &primary, nil
}
