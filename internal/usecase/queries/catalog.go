package queries

import (
	"context"
	"time"

	"agromarket-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	FindFirstPage(ctx context.Context, limit int) ([]*ProductListItem, error)
	FindKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int) ([]*ProductListItem, error)
}

// ProductListPage carries one page of catalog rows plus the cursor for the
// next page. NextCursor is empty on the last page.
type ProductListPage struct {
	Items      []*ProductListItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type ProductQueries interface {
	ListProducts(ctx context.Context, limit int, cursor string) (*ProductListPage, error)
}

type productQueriesImpl struct {
	products ProductReadStore
}

func NewProductQueries(products ProductReadStore) ProductQueries {
	return &productQueriesImpl{products: products}
}

func (q *productQueriesImpl) ListProducts(ctx context.Context, limit int, cursor string) (*ProductListPage, error) {
	limit = ValidateLimit(limit)

	// Fetch one extra row to detect whether a next page exists.
	var (
		items []*ProductListItem
		err   error
	)
	if cursor == "" {
		items, err = q.products.FindFirstPage(ctx, limit+1)
	} else {
		var afterCreatedAt time.Time
		var afterID uuid.UUID
		afterCreatedAt, afterID, err = DecodeAfterCursor(cursor)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		items, err = q.products.FindKeyset(ctx, afterCreatedAt, afterID, limit+1)
	}
	if err != nil {
		return nil, err
	}

	page := &ProductListPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		last := page.Items[len(page.Items)-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return page, nil
}
