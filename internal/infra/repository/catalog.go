package repository

import (
	"context"
	"errors"

	"booking-holds/internal/infra"
	"booking-holds/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ServiceCatalogRepository answers authoritative price/duration lookups. The
// catalog itself is owned by an out-of-scope admin surface; this side only
// reads.
type ServiceCatalogRepository struct {
	db DBTX
}

func NewServiceCatalogRepository(db DBTX) *ServiceCatalogRepository {
	return &ServiceCatalogRepository{db: db}
}

func (r *ServiceCatalogRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ServiceSnapshot, error) {
	const query = `SELECT id, name, price_cents, duration_minutes FROM services WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query services", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]shared.ServiceSnapshot, len(ids))
	for rows.Next() {
		var s shared.ServiceSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.DurationMinutes); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan service", err)
		}
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read services", err)
	}

	// Preserve the caller's order; any missing id fails the whole lookup.
	out := make([]shared.ServiceSnapshot, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "service not found: "+id.String(), nil)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ServiceCatalogRepository) FindDefaultForResource(ctx context.Context, resourceID *uuid.UUID) (*shared.ServiceSnapshot, error) {
	// Prefers the resource-specific default, falls back to the global one.
	const query = `
SELECT id, name, price_cents, duration_minutes
FROM services
WHERE is_default AND (resource_id = $1 OR resource_id IS NULL)
ORDER BY resource_id NULLS LAST
LIMIT 1`

	var s shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, query, resourceID).Scan(&s.ID, &s.Name, &s.PriceCents, &s.DurationMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no default service", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find default service", err)
	}
	return &s, nil
}
