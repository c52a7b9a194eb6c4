package response

import (
	"github.com/google/uuid"
)

type FinalizeBookingResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
}
