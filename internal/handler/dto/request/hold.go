package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	ResourceID      *uuid.UUID `json:"resourceId,omitempty"`
	Start           time.Time  `json:"start" binding:"required"`
	DurationMinutes int        `json:"durationMinutes" binding:"required,gt=0"`
	SessionID       string     `json:"sessionId" binding:"required"`
}

type ExtendHoldRequest struct {
	// ExtraSeconds defaults server-side when omitted.
	ExtraSeconds *int `json:"extraSeconds,omitempty" binding:"omitempty,gt=0"`
}
