//go:build unit

package commands_test

import (
	"context"
	"time"

	"booking-holds/internal/domain/booking"
	"booking-holds/internal/domain/hold"
	"booking-holds/internal/domain/schedule"
	"booking-holds/internal/infra"
	"booking-holds/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory UnitOfWork. Transactions see the same maps, so
// every command operates on the state its predecessors committed; isolation
// anomalies are out of scope here and exercised against Postgres in e2e.
type fakeStore struct {
	holds          map[uuid.UUID]*hold.Hold
	bookings       map[uuid.UUID]*booking.Booking
	services       map[uuid.UUID]shared.ServiceSnapshot
	defaultService *shared.ServiceSnapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		holds:    make(map[uuid.UUID]*hold.Hold),
		bookings: make(map[uuid.UUID]*booking.Booking),
		services: make(map[uuid.UUID]shared.ServiceSnapshot),
	}
}

func (s *fakeStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: s})
}

func (s *fakeStore) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: s})
}

func (s *fakeStore) addService(price int64, durationMinutes int32) uuid.UUID {
	id := uuid.New()
	s.services[id] = shared.ServiceSnapshot{
		ID:              id,
		Name:            "service",
		PriceCents:      price,
		DurationMinutes: durationMinutes,
	}
	return id
}

func (s *fakeStore) setDefaultService(price int64, durationMinutes int32) uuid.UUID {
	id := s.addService(price, durationMinutes)
	svc := s.services[id]
	s.defaultService = &svc
	return id
}

func (s *fakeStore) holdByID(id uuid.UUID) *hold.Hold {
	return s.holds[id]
}

func (s *fakeStore) singleBooking() *booking.Booking {
	for _, b := range s.bookings {
		return b
	}
	return nil
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Holds() shared.HoldRepository       { return &fakeHoldRepo{store: t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Services() shared.ServiceCatalog    { return &fakeCatalog{store: t.store} }

type fakeHoldRepo struct {
	store *fakeStore
}

// cloneHold gives each command its own copy so uncommitted entity mutations
// never leak into the store without an Update.
func cloneHold(h *hold.Hold) *hold.Hold {
	return hold.Reconstruct(
		h.ID(), h.ResourceID(), h.Slot(), h.SessionHash(), h.OwnerUserID(),
		h.Status(), h.Extended(), h.CreatedAt(), h.ExpiresAt(),
	)
}

func (r *fakeHoldRepo) FindByID(_ context.Context, id uuid.UUID) (*hold.Hold, error) {
	h, ok := r.store.holds[id]
	if !ok {
		return nil, nil
	}
	return cloneHold(h), nil
}

func (r *fakeHoldRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*hold.Hold, error) {
	h, ok := r.store.holds[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "hold not found", nil)
	}
	return cloneHold(h), nil
}

func (r *fakeHoldRepo) AnyLiveOverlapping(
	_ context.Context,
	slot schedule.Interval,
	resourceID, excludeID *uuid.UUID,
	now time.Time,
) (bool, error) {
	for _, h := range r.store.holds {
		if excludeID != nil && h.ID() == *excludeID {
			continue
		}
		if !h.IsLive(now) {
			continue
		}
		if resourceID != nil && (h.ResourceID() == nil || *h.ResourceID() != *resourceID) {
			continue
		}
		if schedule.Overlaps(h.Slot(), slot) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHoldRepo) Upsert(_ context.Context, h *hold.Hold) error {
	r.store.holds[h.ID()] = cloneHold(h)
	return nil
}

func (r *fakeHoldRepo) Update(_ context.Context, h *hold.Hold) error {
	if _, ok := r.store.holds[h.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "hold not found", nil)
	}
	r.store.holds[h.ID()] = cloneHold(h)
	return nil
}

func (r *fakeHoldRepo) MarkReleased(_ context.Context, id uuid.UUID, now time.Time) error {
	h, ok := r.store.holds[id]
	if !ok {
		return nil
	}
	c := cloneHold(h)
	c.Release(now)
	r.store.holds[id] = c
	return nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) AnyOverlapping(
	_ context.Context,
	slot schedule.Interval,
	resourceID *uuid.UUID,
	lookback time.Duration,
) (bool, error) {
	cutoff := slot.Start().Add(-lookback)
	for _, b := range r.store.bookings {
		if b.Status() == booking.StatusCancelled {
			continue
		}
		if b.Start().Before(cutoff) || !b.Start().Before(slot.End()) {
			continue
		}
		if !b.End().After(slot.Start()) {
			continue
		}
		if resourceID != nil && (b.ResourceID() == nil || *b.ResourceID() != *resourceID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	for _, existing := range r.store.bookings {
		if existing.HoldID() == b.HoldID() {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "bookings_hold_id_key", nil)
		}
	}
	r.store.bookings[b.ID()] = b
	return b.ID(), nil
}

type fakeCatalog struct {
	store *fakeStore
}

func (c *fakeCatalog) FindByIDs(_ context.Context, ids []uuid.UUID) ([]shared.ServiceSnapshot, error) {
	out := make([]shared.ServiceSnapshot, 0, len(ids))
	for _, id := range ids {
		svc, ok := c.store.services[id]
		if !ok {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service not found", nil)
		}
		out = append(out, svc)
	}
	return out, nil
}

func (c *fakeCatalog) FindDefaultForResource(_ context.Context, _ *uuid.UUID) (*shared.ServiceSnapshot, error) {
	if c.store.defaultService == nil {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "no default service", nil)
	}
	svc := *c.store.defaultService
	return &svc, nil
}
