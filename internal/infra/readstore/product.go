package readstore

import (
	"context"
	"time"

	"agromarket-api/internal/infra"
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/usecase/queries"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

// ListWithPromotions returns the full catalog with promotion associations
// aggregated per product. Inactive rows are included so the pricing layer
// decides eligibility in one place.
func (r *ProductReadStore) ListWithPromotions(ctx context.Context) ([]*shared.ProductSnapshot, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price_cents, p.unit,
		       p.available_qty, p.active, p.producer_id,
		       COALESCE(array_agg(pp.promotion_id) FILTER (WHERE pp.promotion_id IS NOT NULL), '{}') AS promotion_ids,
		       p.created_at, p.updated_at
		FROM products p
		LEFT JOIN promotion_products pp ON pp.product_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at, p.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products with promotions", err)
	}
	defer rows.Close()

	snaps := make([]*shared.ProductSnapshot, 0)
	for rows.Next() {
		var snap shared.ProductSnapshot
		err := rows.Scan(
			&snap.ID, &snap.Name, &snap.Description, &snap.PriceCents, &snap.Unit,
			&snap.AvailableQty, &snap.Active, &snap.ProducerID,
			&snap.PromotionIDs, &snap.CreatedAt, &snap.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return snaps, nil
}

func (r *ProductReadStore) FindFirstPage(ctx context.Context, limit int) ([]*queries.ProductListItem, error) {
	query := `
		SELECT id, name, price_cents, unit, available_qty, created_at
		FROM products
		WHERE active = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int) ([]*queries.ProductListItem, error) {
	query := `
		SELECT id, name, price_cents, unit, available_qty, created_at
		FROM products
		WHERE active = TRUE
		  AND (created_at, id) < ($1, $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, afterCreatedAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products after cursor", err)
	}
	defer rows.Close()

	return scanProductListItems(rows)
}

func scanProductListItems(rows pgx.Rows) ([]*queries.ProductListItem, error) {
	items := make([]*queries.ProductListItem, 0)
	for rows.Next() {
		var item queries.ProductListItem
		err := rows.Scan(&item.ID, &item.Name, &item.PriceCents, &item.Unit, &item.AvailableQty, &item.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return items, nil
}
