package queries

import (
	"context"

	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PromotionQueries interface {
	// ListMine returns the calling producer's own promotions regardless of
	// approval state.
	ListMine(ctx context.Context, producerID uuid.UUID) ([]*PromotionView, error)
	// List returns all promotions, optionally filtered by approval status.
	// Back-office only.
	List(ctx context.Context, status *string, actorRole string) ([]*PromotionView, error)
}

type promotionQueriesImpl struct {
	promotions PromotionReadStore
}

func NewPromotionQueries(promotions PromotionReadStore) PromotionQueries {
	return &promotionQueriesImpl{promotions: promotions}
}

func (q *promotionQueriesImpl) ListMine(ctx context.Context, producerID uuid.UUID) ([]*PromotionView, error) {
	snaps, err := q.promotions.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, err
	}
	return toPromotionViews(snaps), nil
}

func (q *promotionQueriesImpl) List(ctx context.Context, status *string, actorRole string) ([]*PromotionView, error) {
	if actorRole != RoleAdmin {
		return nil, ErrForbidden
	}

	snaps, err := q.promotions.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toPromotionViews(snaps), nil
}

func toPromotionViews(snaps []*shared.PromotionSnapshot) []*PromotionView {
	views := make([]*PromotionView, 0, len(snaps))
	for _, s := range snaps {
		views = append(views, toPromotionView(s))
	}
	return views
}

func toPromotionView(s *shared.PromotionSnapshot) *PromotionView {
	view := &PromotionView{
		ID:             s.ID,
		Code:           s.Code,
		Name:           s.Name,
		Kind:           s.Kind,
		PercentOff:     s.PercentOff,
		AmountOffCents: s.AmountOffCents,
		Description:    s.Description,
		Active:         s.Active,
		ApprovalStatus: s.ApprovalStatus,
		ProducerID:     s.ProducerID,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.StartsAt != nil {
		view.StartsAt = *s.StartsAt
	}
	if s.EndsAt != nil {
		view.EndsAt = *s.EndsAt
	}
	return view
}
