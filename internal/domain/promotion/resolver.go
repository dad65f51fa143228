package promotion

import (
	"time"

	"agromarket-api/internal/domain/product"

	"github.com/google/uuid"
)

// Resolver is a stateless domain service that turns a snapshot of promotion
// and catalog rows into what the public offers page shows. All operations
// are pure: the same inputs always produce the same output, and malformed
// rows are excluded rather than raised.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// CodeStatus is a currently valid code with display metadata.
type CodeStatus struct {
	Promotion     *Promotion
	DaysRemaining int
	Expired       bool
}

// ResolvedOffer is one product priced under one code.
type ResolvedOffer struct {
	ProductID          uuid.UUID
	ProductName        string
	Code               string
	OriginalPriceCents int64
	FinalPriceCents    int64
	SavingsCents       int64
}

type RejectionReason string

const (
	RejectionNotFound  RejectionReason = "not_found"
	RejectionNotActive RejectionReason = "expired_or_inactive"
)

// CodeValidation is the outcome of checking a user-entered code. A rejected
// code is a normal result, not an error.
type CodeValidation struct {
	Valid     bool
	Reason    RejectionReason
	Promotion *Promotion
	Offers    []ResolvedOffer
}

// ListValidCodes keeps the codes that are active, approved and inside their
// validity window at now, preserving source order.
func (r *Resolver) ListValidCodes(promotions []*Promotion, now time.Time) []CodeStatus {
	statuses := make([]CodeStatus, 0, len(promotions))
	for _, p := range promotions {
		if !p.IsValidAt(now) {
			continue
		}
		statuses = append(statuses, CodeStatus{
			Promotion:     p,
			DaysRemaining: p.DaysRemaining(now),
			Expired:       p.IsExpiredAt(now),
		})
	}
	return statuses
}

// ValidateCode matches a user-supplied string against the full code set,
// case-insensitively and exactly. An unknown code and a known-but-inactive
// code are distinguished so the storefront can explain the rejection.
func (r *Resolver) ValidateCode(code string, promotions []*Promotion, catalog []*product.Product, now time.Time) CodeValidation {
	var matched *Promotion
	for _, p := range promotions {
		if p.Code().Matches(code) {
			matched = p
			break
		}
	}

	if matched == nil {
		return CodeValidation{Valid: false, Reason: RejectionNotFound}
	}
	if !matched.IsValidAt(now) {
		return CodeValidation{Valid: false, Reason: RejectionNotActive, Promotion: matched}
	}

	return CodeValidation{
		Valid:     true,
		Promotion: matched,
		Offers:    r.ResolveEligibleProducts(matched, catalog),
	}
}

// ResolveEligibleProducts prices every purchasable product associated with
// the promotion. Inactive or out-of-stock products are excluded even when
// associated. Order follows catalog iteration order.
func (r *Resolver) ResolveEligibleProducts(p *Promotion, catalog []*product.Product) []ResolvedOffer {
	offers := make([]ResolvedOffer, 0)
	for _, prod := range catalog {
		if !prod.HasPromotion(p.ID()) || !prod.IsPurchasable() {
			continue
		}
		original := prod.PriceCents()
		final := p.Benefit().Apply(original)
		offers = append(offers, ResolvedOffer{
			ProductID:          prod.ID(),
			ProductName:        prod.Name(),
			Code:               p.Code().String(),
			OriginalPriceCents: original,
			FinalPriceCents:    final,
			SavingsCents:       original - final,
		})
	}
	return offers
}

// ResolveAllActiveOffers unions the eligible products of every currently
// valid code. When several codes apply to one product, only the code with
// the lowest final price is reported; on a tie the earlier code wins.
// Output follows catalog iteration order.
func (r *Resolver) ResolveAllActiveOffers(promotions []*Promotion, catalog []*product.Product, now time.Time) []ResolvedOffer {
	best := make(map[uuid.UUID]ResolvedOffer)
	for _, status := range r.ListValidCodes(promotions, now) {
		for _, offer := range r.ResolveEligibleProducts(status.Promotion, catalog) {
			current, ok := best[offer.ProductID]
			if !ok || offer.FinalPriceCents < current.FinalPriceCents {
				best[offer.ProductID] = offer
			}
		}
	}

	offers := make([]ResolvedOffer, 0, len(best))
	for _, prod := range catalog {
		if offer, ok := best[prod.ID()]; ok {
			offers = append(offers, offer)
		}
	}
	return offers
}
