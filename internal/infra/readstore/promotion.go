package readstore

import (
	"context"

	"agromarket-api/internal/infra"
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/pkg/pgconv"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const promotionColumns = `
	id, code, name, kind, percent_off, amount_off_cents, description,
	starts_at, ends_at, active, approval_status, producer_id,
	created_at, updated_at`

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

func (r *PromotionReadStore) ListAll(ctx context.Context) ([]*shared.PromotionSnapshot, error) {
	query := `SELECT` + promotionColumns + `
		FROM promotions
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer rows.Close()

	return scanPromotionSnapshots(rows)
}

func (r *PromotionReadStore) ListByProducer(ctx context.Context, producerID uuid.UUID) ([]*shared.PromotionSnapshot, error) {
	query := `SELECT` + promotionColumns + `
		FROM promotions
		WHERE producer_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, producerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions by producer", err)
	}
	defer rows.Close()

	return scanPromotionSnapshots(rows)
}

func (r *PromotionReadStore) ListByStatus(ctx context.Context, status *string) ([]*shared.PromotionSnapshot, error) {
	query := `SELECT` + promotionColumns + `
		FROM promotions
		WHERE $1::text IS NULL OR approval_status = $1
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, pgconv.StringPtrToPgtype(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promotions by status", err)
	}
	defer rows.Close()

	return scanPromotionSnapshots(rows)
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.PromotionSnapshot, error) {
	query := `SELECT` + promotionColumns + `
		FROM promotions
		WHERE id = $1`

	snap, err := scanPromotionSnapshot(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promotion not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promotion by ID", err)
	}
	return snap, nil
}

func scanPromotionSnapshots(rows pgx.Rows) ([]*shared.PromotionSnapshot, error) {
	snaps := make([]*shared.PromotionSnapshot, 0)
	for rows.Next() {
		snap, err := scanPromotionSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read promotion rows", err)
	}
	return snaps, nil
}

func scanPromotionSnapshot(row pgx.Row) (*shared.PromotionSnapshot, error) {
	var (
		snap           shared.PromotionSnapshot
		percentOff     pgtype.Numeric
		amountOffCents pgtype.Int8
		description    pgtype.Text
		startsAt       pgtype.Timestamptz
		endsAt         pgtype.Timestamptz
	)

	err := row.Scan(
		&snap.ID, &snap.Code, &snap.Name, &snap.Kind,
		&percentOff, &amountOffCents, &description,
		&startsAt, &endsAt, &snap.Active, &snap.ApprovalStatus,
		&snap.ProducerID, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.PercentOff, err = pgconv.Float64PtrFromNumeric(percentOff)
	if err != nil {
		return nil, err
	}
	snap.AmountOffCents = pgconv.Int64PtrFromPgtype(amountOffCents)
	snap.Description = pgconv.StringPtrFromPgtype(description)
	snap.StartsAt = pgconv.TimePtrFromPgtype(startsAt)
	snap.EndsAt = pgconv.TimePtrFromPgtype(endsAt)

	return &snap, nil
}
