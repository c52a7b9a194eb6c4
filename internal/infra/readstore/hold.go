package readstore

import (
	"context"
	"errors"

	"booking-holds/internal/infra"
	"booking-holds/internal/infra/converter"
	"booking-holds/internal/infra/repository"
	"booking-holds/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HoldReadStore struct {
	db repository.DBTX
}

func NewHoldReadStore(db repository.DBTX) *HoldReadStore {
	return &HoldReadStore{db: db}
}

func (s *HoldReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HoldView, error) {
	const query = `
SELECT id, resource_id, start_at, end_at, status, extended, created_at, expires_at
FROM holds
WHERE id = $1`

	var row converter.HoldRow
	err := s.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.ResourceID, &row.Start, &row.End,
		&row.Status, &row.Extended, &row.CreatedAt, &row.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "hold not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find hold", err)
	}

	return converter.HoldRowToView(row)
}
