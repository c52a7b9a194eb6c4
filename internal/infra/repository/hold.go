package repository

import (
	"context"
	"errors"
	"time"

	"booking-holds/internal/domain/hold"
	"booking-holds/internal/domain/schedule"
	"booking-holds/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HoldRepository struct {
	db DBTX
}

func NewHoldRepository(db DBTX) *HoldRepository {
	return &HoldRepository{db: db}
}

const holdColumns = `id, resource_id, start_at, end_at, session_hash, owner_user_id, status, extended, created_at, expires_at`

func (r *HoldRepository) FindByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error) {
	const query = `SELECT ` + holdColumns + ` FROM holds WHERE id = $1`

	h, err := scanHold(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find hold", err)
	}
	return h, nil
}

func (r *HoldRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*hold.Hold, error) {
	const query = `SELECT ` + holdColumns + ` FROM holds WHERE id = $1 FOR UPDATE`

	h, err := scanHold(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "hold not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock hold", err)
	}
	return h, nil
}

func (r *HoldRepository) AnyLiveOverlapping(
	ctx context.Context,
	slot schedule.Interval,
	resourceID, excludeID *uuid.UUID,
	now time.Time,
) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM holds
	WHERE status = 'active'
	  AND expires_at > $1
	  AND start_at < $2
	  AND end_at > $3
	  AND ($4::uuid IS NULL OR resource_id = $4)
	  AND ($5::uuid IS NULL OR id <> $5)
)`

	var found bool
	err := r.db.QueryRow(ctx, query, now, slot.End(), slot.Start(), resourceID, excludeID).Scan(&found)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan live holds", err)
	}
	return found, nil
}

// Upsert replaces a dead record at the same deterministic id; the conflict
// scan has already run inside the same transaction.
func (r *HoldRepository) Upsert(ctx context.Context, h *hold.Hold) error {
	const stmt = `
INSERT INTO holds (id, resource_id, start_at, end_at, session_hash, owner_user_id, status, extended, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
	session_hash  = EXCLUDED.session_hash,
	owner_user_id = EXCLUDED.owner_user_id,
	status        = EXCLUDED.status,
	extended      = EXCLUDED.extended,
	created_at    = EXCLUDED.created_at,
	expires_at    = EXCLUDED.expires_at`

	_, err := r.db.Exec(ctx, stmt,
		h.ID(),
		h.ResourceID(),
		h.Slot().Start(),
		h.Slot().End(),
		h.SessionHash(),
		h.OwnerUserID(),
		string(h.Status()),
		h.Extended(),
		h.CreatedAt(),
		h.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert hold", err)
	}
	return nil
}

func (r *HoldRepository) Update(ctx context.Context, h *hold.Hold) error {
	const stmt = `UPDATE holds SET status = $2, extended = $3, expires_at = $4 WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, h.ID(), string(h.Status()), h.Extended(), h.ExpiresAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update hold", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "hold not found", nil)
	}
	return nil
}

func (r *HoldRepository) MarkReleased(ctx context.Context, id uuid.UUID, now time.Time) error {
	const stmt = `UPDATE holds SET status = 'released', expires_at = $2 WHERE id = $1`

	// Zero matched rows is fine: release is idempotent.
	_, err := r.db.Exec(ctx, stmt, id, now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to release hold", err)
	}
	return nil
}

func scanHold(row pgx.Row) (*hold.Hold, error) {
	var (
		id          uuid.UUID
		resourceID  *uuid.UUID
		startAt     time.Time
		endAt       time.Time
		sessionHash string
		ownerUserID *uuid.UUID
		status      string
		extended    bool
		createdAt   time.Time
		expiresAt   time.Time
	)
	if err := row.Scan(&id, &resourceID, &startAt, &endAt, &sessionHash, &ownerUserID, &status, &extended, &createdAt, &expiresAt); err != nil {
		return nil, err
	}

	slot, err := schedule.NewInterval(startAt, endAt)
	if err != nil {
		return nil, err
	}
	return hold.Reconstruct(id, resourceID, slot, sessionHash, ownerUserID, hold.Status(status), extended, createdAt, expiresAt), nil
}
