//go:build unit || e2e

package builder

import (
	"time"

	reqdto "booking-holds/internal/handler/dto/request"
	"booking-holds/internal/usecase/commands"
	"booking-holds/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ID              uuid.UUID
	ResourceID      *uuid.UUID
	Start           time.Time
	DurationMinutes int
	SessionID       string
	Status          string
	Extended        bool
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

func NewHoldBuilder() *HoldBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &HoldBuilder{
		ID:              uuid.New(),
		Start:           now.Add(time.Hour),
		DurationMinutes: 30,
		SessionID:       "session-test",
		Status:          "active",
		CreatedAt:       now,
		ExpiresAt:       now.Add(2 * time.Minute),
	}
}

func (h *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(h)
	return h
}

func (h *HoldBuilder) BuildCreateRequestDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		ResourceID:      h.ResourceID,
		Start:           h.Start,
		DurationMinutes: h.DurationMinutes,
		SessionID:       h.SessionID,
	}
}

func (h *HoldBuilder) BuildSnapshot() commands.HoldSnapshot {
	return commands.HoldSnapshot{
		ID:         h.ID,
		ResourceID: h.ResourceID,
		Start:      h.Start,
		End:        h.Start.Add(time.Duration(h.DurationMinutes) * time.Minute),
		Status:     h.Status,
		Extended:   h.Extended,
		CreatedAt:  h.CreatedAt,
		ExpiresAt:  h.ExpiresAt,
	}
}

func (h *HoldBuilder) BuildView() *queries.HoldView {
	return &queries.HoldView{
		ID:         h.ID,
		ResourceID: h.ResourceID,
		Start:      h.Start,
		End:        h.Start.Add(time.Duration(h.DurationMinutes) * time.Minute),
		Status:     h.Status,
		Extended:   h.Extended,
		CreatedAt:  h.CreatedAt,
		ExpiresAt:  h.ExpiresAt,
	}
}

type BookingBuilder struct {
	HoldID     uuid.UUID
	CustomerID *uuid.UUID
	Name       string
	Email      string
	Phone      string
	ServiceIDs []uuid.UUID
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		HoldID: uuid.New(),
		Name:   "Test Customer",
		Email:  "customer@example.com",
		Phone:  "+15550100",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildFinalizeRequestDTO() reqdto.FinalizeBookingRequest {
	return reqdto.FinalizeBookingRequest{
		HoldID: b.HoldID,
		Customer: reqdto.CustomerContact{
			Name:  b.Name,
			Email: b.Email,
			Phone: b.Phone,
		},
		CustomerID: b.CustomerID,
		ServiceIDs: b.ServiceIDs,
	}
}
