package shared

import (
	"context"

	"agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Promotions() PromotionRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PromotionByID(ctx context.Context, id uuid.UUID) (*PromotionSnapshot, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, promo *promotion.Promotion, productIDs []uuid.UUID) (uuid.UUID, error)
	UpdateApproval(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status promotion.ApprovalStatus) error
	SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
