//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProduct(t *testing.T, db DBLike, producerID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, price_cents, unit, available_qty, active, producer_id) VALUES ($1, $2, $3, 'unit', 10, true, $4)",
		productID, name, priceCents, producerID)
	require.NoError(t, err)

	return productID
}

type PromotionFixture struct {
	Code           string
	Kind           string
	PercentOff     *float64
	AmountOffCents *int64
	Description    *string
	StartsAt       time.Time
	EndsAt         time.Time
	Active         bool
	ApprovalStatus string
	ProducerID     uuid.UUID
	ProductIDs     []uuid.UUID
}

func CreateTestPromotion(t *testing.T, db DBLike, f PromotionFixture) uuid.UUID {
	t.Helper()

	promotionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO promotions
		    (id, code, name, kind, percent_off, amount_off_cents, description,
		     starts_at, ends_at, active, approval_status, producer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		promotionID, f.Code, f.Code+" promotion", f.Kind,
		f.PercentOff, f.AmountOffCents, f.Description,
		f.StartsAt, f.EndsAt, f.Active, f.ApprovalStatus, f.ProducerID)
	require.NoError(t, err)

	for _, productID := range f.ProductIDs {
		_, err = db.Exec(ctx,
			"INSERT INTO promotion_products (promotion_id, product_id) VALUES ($1, $2)",
			promotionID, productID)
		require.NoError(t, err)
	}

	return promotionID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean state
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
