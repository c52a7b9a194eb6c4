package response

import (
	"time"

	"booking-holds/internal/usecase/commands"
	"booking-holds/internal/usecase/queries"

	"github.com/google/uuid"
)

type HoldResponse struct {
	ID         uuid.UUID  `json:"id"`
	ResourceID *uuid.UUID `json:"resourceId,omitempty"`
	Start      time.Time  `json:"start"`
	End        time.Time  `json:"end"`
	Status     string     `json:"status"`
	Extended   bool       `json:"extended"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	Replayed   bool       `json:"replayed,omitempty"`
	Expired    bool       `json:"expired,omitempty"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

func FromHoldSnapshot(snap commands.HoldSnapshot, replayed bool) *HoldResponse {
	return &HoldResponse{
		ID:         snap.ID,
		ResourceID: snap.ResourceID,
		Start:      snap.Start,
		End:        snap.End,
		Status:     snap.Status,
		Extended:   snap.Extended,
		CreatedAt:  snap.CreatedAt,
		ExpiresAt:  snap.ExpiresAt,
		Replayed:   replayed,
	}
}

func FromHoldView(view *queries.HoldView) *HoldResponse {
	return &HoldResponse{
		ID:         view.ID,
		ResourceID: view.ResourceID,
		Start:      view.Start,
		End:        view.End,
		Status:     view.Status,
		Extended:   view.Extended,
		CreatedAt:  view.CreatedAt,
		ExpiresAt:  view.ExpiresAt,
		Expired:    view.Expired,
	}
}
