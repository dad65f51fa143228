package queries

import (
	"context"
	"time"

	"agromarket-api/internal/domain/product"
	"agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/pkg/clock"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	msgCodeNotFound  = "code not found"
	msgCodeNotActive = "code expired or inactive"
)

type PromotionReadStore interface {
	ListAll(ctx context.Context) ([]*shared.PromotionSnapshot, error)
	ListByProducer(ctx context.Context, producerID uuid.UUID) ([]*shared.PromotionSnapshot, error)
	ListByStatus(ctx context.Context, status *string) ([]*shared.PromotionSnapshot, error)
}

type OfferCatalogReadStore interface {
	ListWithPromotions(ctx context.Context) ([]*shared.ProductSnapshot, error)
}

type OfferQueries interface {
	ListCodes(ctx context.Context) ([]*CodeView, error)
	ListOffers(ctx context.Context) (*OffersPageView, error)
	ValidateCode(ctx context.Context, code string) (*CodeValidationView, error)
}

type offerQueriesImpl struct {
	promotions PromotionReadStore
	catalog    OfferCatalogReadStore
	resolver   *promotion.Resolver
	clock      clock.Clock
}

func NewOfferQueries(promotions PromotionReadStore, catalog OfferCatalogReadStore, resolver *promotion.Resolver, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		promotions: promotions,
		catalog:    catalog,
		resolver:   resolver,
		clock:      clk,
	}
}

func (q *offerQueriesImpl) ListCodes(ctx context.Context) ([]*CodeView, error) {
	promos, err := q.loadPromotions(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	statuses := q.resolver.ListValidCodes(promos, now)
	views := make([]*CodeView, 0, len(statuses))
	for _, s := range statuses {
		views = append(views, toCodeView(s))
	}
	return views, nil
}

func (q *offerQueriesImpl) ListOffers(ctx context.Context) (*OffersPageView, error) {
	promos, err := q.loadPromotions(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := q.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	statuses := q.resolver.ListValidCodes(promos, now)
	codes := make([]*CodeView, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, toCodeView(s))
	}

	return &OffersPageView{
		Codes:    codes,
		Products: toOfferViews(q.resolver.ResolveAllActiveOffers(promos, catalog, now)),
	}, nil
}

func (q *offerQueriesImpl) ValidateCode(ctx context.Context, code string) (*CodeValidationView, error) {
	promos, err := q.loadPromotions(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := q.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	result := q.resolver.ValidateCode(code, promos, catalog, now)
	if !result.Valid {
		msg := msgCodeNotFound
		if result.Reason == promotion.RejectionNotActive {
			msg = msgCodeNotActive
		}
		return &CodeValidationView{Valid: false, Message: msg}, nil
	}

	return &CodeValidationView{
		Valid: true,
		Code: toCodeView(promotion.CodeStatus{
			Promotion:     result.Promotion,
			DaysRemaining: result.Promotion.DaysRemaining(now),
			Expired:       result.Promotion.IsExpiredAt(now),
		}),
		Products: toOfferViews(result.Offers),
	}, nil
}

func (q *offerQueriesImpl) loadPromotions(ctx context.Context) ([]*promotion.Promotion, error) {
	snaps, err := q.promotions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDomainPromotions(snaps), nil
}

func (q *offerQueriesImpl) loadCatalog(ctx context.Context) ([]*product.Product, error) {
	snaps, err := q.catalog.ListWithPromotions(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]*product.Product, 0, len(snaps))
	for _, s := range snaps {
		catalog = append(catalog, product.Reconstruct(
			s.ID, s.Name, s.Description, s.PriceCents, s.Unit,
			s.AvailableQty, s.Active, s.ProducerID, s.PromotionIDs,
			s.CreatedAt, s.UpdatedAt,
		))
	}
	return catalog, nil
}

// toDomainPromotions reconstructs promotion entities from snapshots. Rows
// whose benefit cannot be reconstructed are dropped (fail closed): a broken
// row must degrade to an invisible code, never break the offers page.
func toDomainPromotions(snaps []*shared.PromotionSnapshot) []*promotion.Promotion {
	promos := make([]*promotion.Promotion, 0, len(snaps))
	for _, s := range snaps {
		p, err := toDomainPromotion(s)
		if err != nil {
			continue
		}
		promos = append(promos, p)
	}
	return promos
}

func toDomainPromotion(s *shared.PromotionSnapshot) (*promotion.Promotion, error) {
	kind, err := promotion.NewKind(s.Kind)
	if err != nil {
		return nil, err
	}

	var benefit promotion.Benefit
	switch kind {
	case promotion.KindPercentage:
		var percent float64
		if s.PercentOff != nil {
			percent = *s.PercentOff
		}
		benefit, err = promotion.NewPercentageBenefit(percent)
	case promotion.KindFixedAmount:
		var amount int64
		if s.AmountOffCents != nil {
			amount = *s.AmountOffCents
		}
		benefit, err = promotion.NewFixedAmountBenefit(amount)
	case promotion.KindOffer:
		var description string
		if s.Description != nil {
			description = *s.Description
		}
		benefit, err = promotion.NewOfferBenefit(description)
	}
	if err != nil {
		return nil, err
	}

	approval, err := promotion.NewApprovalStatus(s.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	// NULL window bounds become zero times; IsValidAt rejects those.
	var startsAt, endsAt time.Time
	if s.StartsAt != nil {
		startsAt = *s.StartsAt
	}
	if s.EndsAt != nil {
		endsAt = *s.EndsAt
	}

	return promotion.Reconstruct(
		s.ID, promotion.Code(s.Code), s.Name, benefit,
		startsAt, endsAt, s.Active, approval, s.ProducerID,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func toCodeView(s promotion.CodeStatus) *CodeView {
	p := s.Promotion
	view := &CodeView{
		ID:            p.ID(),
		Code:          p.Code().String(),
		Name:          p.Name(),
		Kind:          string(p.Benefit().Kind()),
		DisplayValue:  p.Benefit().DisplayValue(),
		StartsAt:      p.StartsAt(),
		EndsAt:        p.EndsAt(),
		DaysRemaining: s.DaysRemaining,
		Expired:       s.Expired,
	}

	switch p.Benefit().Kind() {
	case promotion.KindPercentage:
		percent := p.Benefit().PercentOff()
		view.PercentOff = &percent
	case promotion.KindFixedAmount:
		amount := p.Benefit().AmountOffCents()
		view.AmountOffCents = &amount
	case promotion.KindOffer:
		description := p.Benefit().Description()
		view.Description = &description
	}
	return view
}

func toOfferViews(offers []promotion.ResolvedOffer) []OfferView {
	views := make([]OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, OfferView{
			ProductID:          o.ProductID,
			ProductName:        o.ProductName,
			Code:               o.Code,
			OriginalPriceCents: o.OriginalPriceCents,
			FinalPriceCents:    o.FinalPriceCents,
			SavingsCents:       o.SavingsCents,
		})
	}
	return views
}
