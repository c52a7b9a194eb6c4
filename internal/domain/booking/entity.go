package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration = errors.New("booking duration must be positive")
	ErrNegativePrice   = errors.New("booking price cannot be negative")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ContactSnapshot is a denormalized copy of the customer's contact details,
// captured at finalization for display. The customer record remains the
// source of truth.
type ContactSnapshot struct {
	Name  string
	Email string
	Phone string
}

// Booking is the durable record produced by finalizing exactly one hold.
// It is created pending; confirmation and rejection are administrative
// actions performed elsewhere.
type Booking struct {
	id         uuid.UUID
	holdID     uuid.UUID
	resourceID *uuid.UUID
	serviceID  *uuid.UUID
	customerID *uuid.UUID
	start      time.Time
	duration   time.Duration
	status     Status
	priceCents int64
	contact    ContactSnapshot
	createdAt  time.Time
}

type NewBookingParams struct {
	HoldID     uuid.UUID
	ResourceID *uuid.UUID
	ServiceID  *uuid.UUID
	CustomerID *uuid.UUID
	Start      time.Time
	Duration   time.Duration
	PriceCents int64
	Contact    ContactSnapshot
	Now        time.Time
}

func New(p NewBookingParams) (*Booking, error) {
	if p.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.PriceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Booking{
		id:         uuid.New(),
		holdID:     p.HoldID,
		resourceID: p.ResourceID,
		serviceID:  p.ServiceID,
		customerID: p.CustomerID,
		start:      p.Start,
		duration:   p.Duration,
		status:     StatusPending,
		priceCents: p.PriceCents,
		contact:    p.Contact,
		createdAt:  p.Now,
	}, nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) HoldID() uuid.UUID        { return b.holdID }
func (b *Booking) ResourceID() *uuid.UUID   { return b.resourceID }
func (b *Booking) ServiceID() *uuid.UUID    { return b.serviceID }
func (b *Booking) CustomerID() *uuid.UUID   { return b.customerID }
func (b *Booking) Start() time.Time         { return b.start }
func (b *Booking) Duration() time.Duration  { return b.duration }
func (b *Booking) End() time.Time           { return b.start.Add(b.duration) }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) PriceCents() int64        { return b.priceCents }
func (b *Booking) Contact() ContactSnapshot { return b.contact }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
