package response

import (
	"time"

	"agromarket-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"priceCents"`
	Unit         string    `json:"unit"`
	AvailableQty int32     `json:"availableQty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductListResponse struct {
	Items      []ProductListItemResponse `json:"items"`
	NextCursor string                    `json:"nextCursor,omitempty"`
}

func FromProductListPage(page *queries.ProductListPage) *ProductListResponse {
	resp := &ProductListResponse{
		Items:      make([]ProductListItemResponse, 0, len(page.Items)),
		NextCursor: page.NextCursor,
	}
	_ = copier.Copy(&resp.Items, &page.Items)
	return resp
}
