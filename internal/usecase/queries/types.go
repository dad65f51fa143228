package queries

import (
	"time"

	"github.com/google/uuid"
)

// Role names as stored in JWT claims; aligned with domain/user roles.
const (
	RoleCustomer = "customer"
	RoleProducer = "producer"
	RoleAdmin    = "admin"
)

// CodeView represents a currently redeemable promotion code with
// display-ready metadata for the offers page.
type CodeView struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	PercentOff     *float64  `json:"percent_off,omitempty"`
	AmountOffCents *int64    `json:"amount_off_cents,omitempty"`
	Description    *string   `json:"description,omitempty"`
	DisplayValue   string    `json:"display_value"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	DaysRemaining  int       `json:"days_remaining"`
	Expired        bool      `json:"expired"`
}

// OfferView is one product priced under the code shown next to it.
type OfferView struct {
	ProductID          uuid.UUID `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Code               string    `json:"code"`
	OriginalPriceCents int64     `json:"original_price_cents"`
	FinalPriceCents    int64     `json:"final_price_cents"`
	SavingsCents       int64     `json:"savings_cents"`
}

// OffersPageView is everything the public offers page renders.
type OffersPageView struct {
	Codes    []*CodeView `json:"codes"`
	Products []OfferView `json:"products"`
}

// CodeValidationView is the outcome of a user-entered code check. A
// rejected code is a normal 200 response, not an error.
type CodeValidationView struct {
	Valid    bool        `json:"valid"`
	Message  string      `json:"message,omitempty"`
	Code     *CodeView   `json:"code,omitempty"`
	Products []OfferView `json:"products,omitempty"`
}

// ProductListItem represents read-optimized catalog data for list pages.
type ProductListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	Unit         string    `json:"unit"`
	AvailableQty int32     `json:"available_qty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PromotionView represents a promotion row for the back office, including
// rows that are pending, rejected or deactivated.
type PromotionView struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	PercentOff     *float64  `json:"percent_off,omitempty"`
	AmountOffCents *int64    `json:"amount_off_cents,omitempty"`
	Description    *string   `json:"description,omitempty"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Active         bool      `json:"active"`
	ApprovalStatus string    `json:"approval_status"`
	ProducerID     uuid.UUID `json:"producer_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
