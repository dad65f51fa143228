//go:build unit || e2e

package builder

import (
	"time"

	"agromarket-api/internal/domain/product"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID           uuid.UUID
	Name         string
	Description  string
	PriceCents   int64
	Unit         string
	AvailableQty int32
	Active       bool
	ProducerID   uuid.UUID
	PromotionIDs []uuid.UUID
	CreatedAt    time.Time
}

func NewProductBuilder(now time.Time) *ProductBuilder {
	return &ProductBuilder{
		ID:           uuid.New(),
		Name:         "Coffee beans 500g",
		Description:  "Single origin, medium roast",
		PriceCents:   10000,
		Unit:         "bag",
		AvailableQty: 25,
		Active:       true,
		ProducerID:   uuid.New(),
		CreatedAt:    now.Add(-48 * time.Hour),
	}
}

// Build methods
func (b *ProductBuilder) BuildDomain() *product.Product {
	return product.Reconstruct(
		b.ID, b.Name, b.Description, b.PriceCents, b.Unit,
		b.AvailableQty, b.Active, b.ProducerID, b.PromotionIDs,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		PriceCents:   b.PriceCents,
		Unit:         b.Unit,
		AvailableQty: b.AvailableQty,
		Active:       b.Active,
		ProducerID:   b.ProducerID,
		PromotionIDs: b.PromotionIDs,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPriceCents(priceCents int64) *ProductBuilder {
	b.PriceCents = priceCents
	return b
}

func (b *ProductBuilder) WithPromotions(ids ...uuid.UUID) *ProductBuilder {
	b.PromotionIDs = ids
	return b
}

func (b *ProductBuilder) WithProducerID(producerID uuid.UUID) *ProductBuilder {
	b.ProducerID = producerID
	return b
}

func (b *ProductBuilder) AsOutOfStock() *ProductBuilder {
	b.AvailableQty = 0
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Active = false
	return b
}
