package response

import (
	"time"

	"agromarket-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	PercentOff     *float64  `json:"percentOff,omitempty"`
	AmountOffCents *int64    `json:"amountOffCents,omitempty"`
	Description    *string   `json:"description,omitempty"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	Active         bool      `json:"active"`
	ApprovalStatus string    `json:"approvalStatus"`
	ProducerID     uuid.UUID `json:"producerId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreatePromotionResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromPromotionViews(views []*queries.PromotionView) []PromotionResponse {
	resp := make([]PromotionResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}
