package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrNegativePrice   = errors.New("unit price cannot be negative")
	ErrNegativeQty     = errors.New("available quantity cannot be negative")
	ErrInvalidProducer = errors.New("product must belong to a producer")
)

// Product is a catalog entry as seen by the offers page: the row itself
// plus the promotion associations the data-access layer has already joined.
type Product struct {
	id           uuid.UUID
	name         string
	description  string
	priceCents   int64
	unit         string
	availableQty int32
	active       bool
	producerID   uuid.UUID
	promotionIDs []uuid.UUID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProduct(name, description string, priceCents int64, unit string, availableQty int32, producerID uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if availableQty < 0 {
		return nil, ErrNegativeQty
	}
	if producerID == uuid.Nil {
		return nil, ErrInvalidProducer
	}

	return &Product{
		id:           uuid.New(),
		name:         name,
		description:  description,
		priceCents:   priceCents,
		unit:         unit,
		availableQty: availableQty,
		active:       true,
		producerID:   producerID,
	}, nil
}

// Reconstruct rebuilds a product from persisted state without revalidating
// creation invariants. A negative stored price is clamped to zero so display
// logic degrades instead of producing negative offers.
func Reconstruct(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	unit string,
	availableQty int32,
	active bool,
	producerID uuid.UUID,
	promotionIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Product {
	if priceCents < 0 {
		priceCents = 0
	}
	if availableQty < 0 {
		availableQty = 0
	}
	return &Product{
		id:           id,
		name:         name,
		description:  description,
		priceCents:   priceCents,
		unit:         unit,
		availableQty: availableQty,
		active:       active,
		producerID:   producerID,
		promotionIDs: promotionIDs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Product) ID() uuid.UUID             { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Description() string       { return p.description }
func (p *Product) PriceCents() int64         { return p.priceCents }
func (p *Product) Unit() string              { return p.unit }
func (p *Product) AvailableQty() int32       { return p.availableQty }
func (p *Product) IsActive() bool            { return p.active }
func (p *Product) ProducerID() uuid.UUID     { return p.producerID }
func (p *Product) PromotionIDs() []uuid.UUID { return p.promotionIDs }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }
func (p *Product) UpdatedAt() time.Time      { return p.updatedAt }

// IsPurchasable reports whether the product can appear on the storefront:
// inactive or out-of-stock products are excluded even when associated with
// a valid promotion.
func (p *Product) IsPurchasable() bool {
	return p.active && p.availableQty > 0
}

func (p *Product) HasPromotion(promotionID uuid.UUID) bool {
	for _, id := range p.promotionIDs {
		if id == promotionID {
			return true
		}
	}
	return false
}
