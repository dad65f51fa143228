//go:build unit || e2e

package builder

import (
	"time"

	dompromo "agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID             uuid.UUID
	Code           string
	Name           string
	Kind           string
	PercentOff     float64
	AmountOffCents int64
	Description    string
	StartsAt       time.Time
	EndsAt         time.Time
	Active         bool
	ApprovalStatus string
	ProducerID     uuid.UUID
	CreatedAt      time.Time
}

func NewPromotionBuilder(now time.Time) *PromotionBuilder {
	return &PromotionBuilder{
		ID:             uuid.New(),
		Code:           "SAVE10",
		Name:           "Ten percent off",
		Kind:           "percentage",
		PercentOff:     10,
		StartsAt:       now.Add(-24 * time.Hour),
		EndsAt:         now.Add(72 * time.Hour),
		Active:         true,
		ApprovalStatus: "approved",
		ProducerID:     uuid.New(),
		CreatedAt:      now.Add(-24 * time.Hour),
	}
}

// Build methods
func (b *PromotionBuilder) BuildDomain() *dompromo.Promotion {
	var benefit dompromo.Benefit
	var err error
	switch dompromo.Kind(b.Kind) {
	case dompromo.KindPercentage:
		benefit, err = dompromo.NewPercentageBenefit(b.PercentOff)
	case dompromo.KindFixedAmount:
		benefit, err = dompromo.NewFixedAmountBenefit(b.AmountOffCents)
	case dompromo.KindOffer:
		benefit, err = dompromo.NewOfferBenefit(b.Description)
	}
	if err != nil {
		panic("promotion builder: " + err.Error())
	}

	return dompromo.Reconstruct(
		b.ID, dompromo.Code(b.Code), b.Name, benefit,
		b.StartsAt, b.EndsAt, b.Active, dompromo.ApprovalStatus(b.ApprovalStatus),
		b.ProducerID, b.CreatedAt, b.CreatedAt,
	)
}

func (b *PromotionBuilder) BuildSnapshot() *shared.PromotionSnapshot {
	snap := &shared.PromotionSnapshot{
		ID:             b.ID,
		Code:           b.Code,
		Name:           b.Name,
		Kind:           b.Kind,
		Active:         b.Active,
		ApprovalStatus: b.ApprovalStatus,
		ProducerID:     b.ProducerID,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}

	switch dompromo.Kind(b.Kind) {
	case dompromo.KindPercentage:
		percent := b.PercentOff
		snap.PercentOff = &percent
	case dompromo.KindFixedAmount:
		amount := b.AmountOffCents
		snap.AmountOffCents = &amount
	case dompromo.KindOffer:
		description := b.Description
		snap.Description = &description
	}

	if !b.StartsAt.IsZero() {
		startsAt := b.StartsAt
		snap.StartsAt = &startsAt
	}
	if !b.EndsAt.IsZero() {
		endsAt := b.EndsAt
		snap.EndsAt = &endsAt
	}
	return snap
}

// Fluent builder methods
func (b *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	b.Code = code
	return b
}

func (b *PromotionBuilder) WithName(name string) *PromotionBuilder {
	b.Name = name
	return b
}

func (b *PromotionBuilder) WithPercentOff(percent float64) *PromotionBuilder {
	b.Kind = "percentage"
	b.PercentOff = percent
	return b
}

func (b *PromotionBuilder) WithAmountOffCents(amount int64) *PromotionBuilder {
	b.Kind = "fixed_amount"
	b.AmountOffCents = amount
	return b
}

func (b *PromotionBuilder) AsOffer(description string) *PromotionBuilder {
	b.Kind = "offer"
	b.Description = description
	return b
}

func (b *PromotionBuilder) WithWindow(startsAt, endsAt time.Time) *PromotionBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *PromotionBuilder) WithProducerID(producerID uuid.UUID) *PromotionBuilder {
	b.ProducerID = producerID
	return b
}

func (b *PromotionBuilder) AsInactive() *PromotionBuilder {
	b.Active = false
	return b
}

func (b *PromotionBuilder) AsPending() *PromotionBuilder {
	b.ApprovalStatus = "pending"
	return b
}

func (b *PromotionBuilder) AsRejected() *PromotionBuilder {
	b.ApprovalStatus = "rejected"
	return b
}
