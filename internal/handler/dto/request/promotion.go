package request

import (
	"time"

	"agromarket-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePromotionRequest struct {
	Code           string    `json:"code" binding:"required,min=3,max=20"`
	Name           string    `json:"name" binding:"required,max=120"`
	Kind           string    `json:"kind" binding:"required,oneof=percentage fixed_amount offer"`
	PercentOff     float64   `json:"percentOff" binding:"omitempty,gte=0,lte=100"`
	AmountOffCents int64     `json:"amountOffCents" binding:"omitempty,gte=0"`
	Description    string    `json:"description" binding:"omitempty,max=500"`
	StartsAt       time.Time `json:"startsAt" binding:"required"`
	EndsAt         time.Time `json:"endsAt" binding:"required"`
	ProductIDs     []string  `json:"productIds" binding:"omitempty,dive,uuid"`
}

func (r *CreatePromotionRequest) ToCommand() (commands.CreatePromotionRequest, error) {
	productIDs := make([]uuid.UUID, 0, len(r.ProductIDs))
	for _, raw := range r.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return commands.CreatePromotionRequest{}, err
		}
		productIDs = append(productIDs, id)
	}

	return commands.CreatePromotionRequest{
		Code:           r.Code,
		Name:           r.Name,
		Kind:           r.Kind,
		PercentOff:     r.PercentOff,
		AmountOffCents: r.AmountOffCents,
		Description:    r.Description,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		ProductIDs:     productIDs,
	}, nil
}
