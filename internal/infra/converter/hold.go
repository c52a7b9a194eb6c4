package converter

import (
	"time"

	"booking-holds/internal/infra"
	"booking-holds/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// HoldRow mirrors the holds table columns the read side projects.
type HoldRow struct {
	ID         uuid.UUID
	ResourceID *uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	Extended   bool
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

func HoldRowToView(row HoldRow) (*queries.HoldView, error) {
	var view queries.HoldView
	if err := copier.Copy(&view, &row); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to convert hold row", err)
	}
	return &view, nil
}
