package repository

import (
	"context"
	"errors"

	"agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/infra"
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/pkg/pgconv"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type PromotionRepository struct{}

func NewPromotionRepository() shared.PromotionRepository {
	return &PromotionRepository{}
}

func (r *PromotionRepository) Create(ctx context.Context, dbtx db.DBTX, promo *promotion.Promotion, productIDs []uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO promotions (
			id, code, name, kind, percent_off, amount_off_cents, description,
			starts_at, ends_at, active, approval_status, producer_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	benefit := promo.Benefit()
	var (
		percentOff     pgtype.Float8
		amountOffCents pgtype.Int8
		description    pgtype.Text
	)
	switch benefit.Kind() {
	case promotion.KindPercentage:
		percentOff = pgtype.Float8{Float64: benefit.PercentOff(), Valid: true}
	case promotion.KindFixedAmount:
		amountOffCents = pgtype.Int8{Int64: benefit.AmountOffCents(), Valid: true}
	case promotion.KindOffer:
		description = pgconv.StringToPgtype(benefit.Description())
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		promo.ID(), promo.Code().String(), promo.Name(), string(benefit.Kind()),
		percentOff, amountOffCents, description,
		promo.StartsAt(), promo.EndsAt(), promo.IsActive(),
		string(promo.Approval()), promo.ProducerID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create promotion", err)
	}

	if len(productIDs) > 0 {
		// Only products owned by the creating producer may be linked.
		tag, err := dbtx.Exec(ctx, `
			INSERT INTO promotion_products (promotion_id, product_id)
			SELECT $1, p.id
			FROM products p
			WHERE p.id = ANY($2) AND p.producer_id = $3`,
			id, productIDs, promo.ProducerID(),
		)
		if err != nil {
			return uuid.Nil, classifyWriteErr("failed to associate promotion with products", err)
		}
		if tag.RowsAffected() != int64(len(productIDs)) {
			return uuid.Nil, infra.WrapRepoErr("product not found or not owned by producer", nil, infra.KindNotFound)
		}
	}

	return id, nil
}

func (r *PromotionRepository) UpdateApproval(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status promotion.ApprovalStatus) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE promotions SET approval_status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return classifyWriteErr("failed to update promotion approval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE promotions SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return classifyWriteErr("failed to update promotion active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
