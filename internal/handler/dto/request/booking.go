package request

import (
	"github.com/google/uuid"
)

type CustomerContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type FinalizeBookingRequest struct {
	HoldID     uuid.UUID       `json:"holdId" binding:"required"`
	Customer   CustomerContact `json:"customer"`
	CustomerID *uuid.UUID      `json:"customerId,omitempty"`
	// Price and ServicePrices are accepted for wire compatibility but never
	// trusted; the stored price always comes from the catalog.
	Price         *int64      `json:"price,omitempty"`
	ServiceIDs    []uuid.UUID `json:"serviceIds,omitempty"`
	ServicePrices []int64     `json:"servicePrices,omitempty"`
}
