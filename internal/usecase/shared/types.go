package shared

import (
	"time"

	"github.com/google/uuid"
)

// PromotionSnapshot is a promotion row with associations already resolved by
// the data-access layer. Nullable columns stay pointers; the domain layer
// decides how missing values degrade.
type PromotionSnapshot struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Kind           string
	PercentOff     *float64
	AmountOffCents *int64
	Description    *string
	StartsAt       *time.Time
	EndsAt         *time.Time
	Active         bool
	ApprovalStatus string
	ProducerID     uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductSnapshot is a catalog row joined with its promotion associations.
type ProductSnapshot struct {
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
	UpdatedAt    time.Time
}
