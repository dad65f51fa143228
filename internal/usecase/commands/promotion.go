package commands

import (
	"context"
	"time"

	dompromo "agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/infra"
	"agromarket-api/internal/pkg/clock"
	"agromarket-api/internal/pkg/errs"
	"agromarket-api/internal/usecase/queries"
	"agromarket-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrPromotionNotOwned = errs.New("promotion not owned by producer")
	ErrProductNotOwned   = errs.New("product not found or not owned by producer")
	ErrNotReviewable     = errs.New("promotion is not pending review")
	ErrForbidden         = errs.New("operation not allowed for this role")
)

type CreatePromotionRequest struct {
	Code           string
	Name           string
	Kind           string
	PercentOff     float64
	AmountOffCents int64
	Description    string
	StartsAt       time.Time
	EndsAt         time.Time
	ProductIDs     []uuid.UUID
}

type CreatePromotionResult struct {
	PromotionID uuid.UUID
}

type PromotionCommands interface {
	Create(ctx context.Context, req CreatePromotionRequest, producerID uuid.UUID) (*CreatePromotionResult, error)
	Approve(ctx context.Context, promotionID uuid.UUID, actorRole string) error
	Reject(ctx context.Context, promotionID uuid.UUID, actorRole string) error
	Deactivate(ctx context.Context, promotionID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type promotionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPromotionUseCase(uow shared.UnitOfWork, clk clock.Clock) PromotionCommands {
	return &promotionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *promotionUseCaseImpl) Create(ctx context.Context, req CreatePromotionRequest, producerID uuid.UUID) (*CreatePromotionResult, error) {
	code, err := dompromo.NewCode(req.Code)
	if err != nil {
		return nil, err
	}

	kind, err := dompromo.NewKind(req.Kind)
	if err != nil {
		return nil, err
	}

	var benefit dompromo.Benefit
	switch kind {
	case dompromo.KindPercentage:
		benefit, err = dompromo.NewPercentageBenefit(req.PercentOff)
	case dompromo.KindFixedAmount:
		benefit, err = dompromo.NewFixedAmountBenefit(req.AmountOffCents)
	case dompromo.KindOffer:
		benefit, err = dompromo.NewOfferBenefit(req.Description)
	}
	if err != nil {
		return nil, err
	}

	// A window that already ended would be dead on arrival.
	if req.EndsAt.Before(uc.clock.Now()) {
		return nil, dompromo.ErrInvalidWindow
	}

	promo, err := dompromo.NewPromotion(code, req.Name, benefit, req.StartsAt, req.EndsAt, producerID)
	if err != nil {
		return nil, err
	}

	// The repository verifies ownership by comparing inserted link rows
	// against the requested set, so duplicates must be removed first.
	productIDs := dedupeIDs(req.ProductIDs)

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Promotions().Create(ctx, tx.DB(), promo, productIDs)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrProductNotOwned
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreatePromotionResult{PromotionID: createdID}, nil
}

func (uc *promotionUseCaseImpl) Approve(ctx context.Context, promotionID uuid.UUID, actorRole string) error {
	return uc.review(ctx, promotionID, actorRole, dompromo.ApprovalApproved)
}

func (uc *promotionUseCaseImpl) Reject(ctx context.Context, promotionID uuid.UUID, actorRole string) error {
	return uc.review(ctx, promotionID, actorRole, dompromo.ApprovalRejected)
}

func (uc *promotionUseCaseImpl) review(ctx context.Context, promotionID uuid.UUID, actorRole string, decision dompromo.ApprovalStatus) error {
	if actorRole != queries.RoleAdmin {
		return ErrForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PromotionByID(ctx, promotionID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPromotionNotFound
			}
			return derr
		}
		if snap.ApprovalStatus != string(dompromo.ApprovalPending) {
			return ErrNotReviewable
		}
		return tx.Promotions().UpdateApproval(ctx, tx.DB(), promotionID, decision)
	})
}

func (uc *promotionUseCaseImpl) Deactivate(ctx context.Context, promotionID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PromotionByID(ctx, promotionID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPromotionNotFound
			}
			return derr
		}
		if actorRole != queries.RoleAdmin && snap.ProducerID != actorID {
			return ErrPromotionNotOwned
		}
		return tx.Promotions().SetActive(ctx, tx.DB(), promotionID, false)
	})
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
