package hold

import (
	"errors"
	"time"

	"booking-holds/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrSessionRequired  = errors.New("session token required")
	ErrStartInPast      = errors.New("start must be now or in the future")
	ErrInvalidSlot      = errors.New("invalid time slot")
	ErrNotActive        = errors.New("hold is not active")
	ErrAlreadyExtended  = errors.New("hold already extended")
	ErrAlreadyFinalized = errors.New("hold already finalized")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusFinalized Status = "finalized"
	StatusReleased  Status = "released"
)

// Hold is a short-lived lease on a time interval. Its identity is derived
// from the request parameters, so a retried CreateHold lands on the same row
// instead of minting a duplicate. Expiry is never written: readers compare
// ExpiresAt against the current instant.
type Hold struct {
	id          uuid.UUID
	resourceID  *uuid.UUID
	slot        schedule.Interval
	sessionHash string
	ownerUserID *uuid.UUID
	status      Status
	extended    bool
	createdAt   time.Time
	expiresAt   time.Time
}

type NewHoldParams struct {
	ResourceID   *uuid.UUID
	Start        time.Time
	Duration     time.Duration
	SessionToken string
	OwnerUserID  *uuid.UUID
	Now          time.Time
	// PastStartTolerance absorbs client clock skew when validating Start.
	PastStartTolerance time.Duration
	LeaseDuration      time.Duration
}

func New(p NewHoldParams) (*Hold, error) {
	if p.SessionToken == "" {
		return nil, ErrSessionRequired
	}
	slot, err := schedule.NewIntervalFromDuration(p.Start, p.Duration)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if p.Start.Before(p.Now.Add(-p.PastStartTolerance)) {
		return nil, ErrStartInPast
	}

	return &Hold{
		id:          DeriveID(p.SessionToken, p.ResourceID, slot),
		resourceID:  p.ResourceID,
		slot:        slot,
		sessionHash: HashSession(p.SessionToken),
		ownerUserID: p.OwnerUserID,
		status:      StatusActive,
		extended:    false,
		createdAt:   p.Now,
		expiresAt:   p.Now.Add(p.LeaseDuration),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	resourceID *uuid.UUID,
	slot schedule.Interval,
	sessionHash string,
	ownerUserID *uuid.UUID,
	status Status,
	extended bool,
	createdAt, expiresAt time.Time,
) *Hold {
	return &Hold{
		id:          id,
		resourceID:  resourceID,
		slot:        slot,
		sessionHash: sessionHash,
		ownerUserID: ownerUserID,
		status:      status,
		extended:    extended,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
	}
}

func (h *Hold) ID() uuid.UUID          { return h.id }
func (h *Hold) ResourceID() *uuid.UUID { return h.resourceID }
func (h *Hold) Slot() schedule.Interval {
	return h.slot
}
func (h *Hold) SessionHash() string     { return h.sessionHash }
func (h *Hold) OwnerUserID() *uuid.UUID { return h.ownerUserID }
func (h *Hold) Status() Status          { return h.status }
func (h *Hold) Extended() bool          { return h.extended }
func (h *Hold) CreatedAt() time.Time    { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time    { return h.expiresAt }

// IsLive reports whether the hold still blocks its interval at the given
// instant.
func (h *Hold) IsLive(now time.Time) bool {
	return h.status == StatusActive && h.expiresAt.After(now)
}

func (h *Hold) IsExpired(now time.Time) bool {
	return !h.expiresAt.After(now)
}

// Extend pushes ExpiresAt out once. A second extension is refused so a
// client cannot squat on a slot indefinitely.
func (h *Hold) Extend(extra time.Duration) error {
	if h.status != StatusActive {
		return ErrNotActive
	}
	if h.extended {
		return ErrAlreadyExtended
	}
	h.expiresAt = h.expiresAt.Add(extra)
	h.extended = true
	return nil
}

// Finalize moves the hold to its terminal success state.
func (h *Hold) Finalize(now time.Time) error {
	if h.status != StatusActive {
		return ErrNotActive
	}
	h.status = StatusFinalized
	h.expiresAt = now
	return nil
}

// Release makes the hold inert immediately regardless of prior status.
// Releasing a finalized hold is a silent no-op effect-wise: finalized holds
// are already invisible to conflict scans.
func (h *Hold) Release(now time.Time) {
	h.status = StatusReleased
	h.expiresAt = now
}
