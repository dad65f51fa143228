package response

import (
	"time"

	"agromarket-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CodeResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	PercentOff     *float64  `json:"percentOff,omitempty"`
	AmountOffCents *int64    `json:"amountOffCents,omitempty"`
	Description    *string   `json:"description,omitempty"`
	DisplayValue   string    `json:"displayValue"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	DaysRemaining  int       `json:"daysRemaining"`
	Expired        bool      `json:"expired"`
}

type OfferResponse struct {
	ProductID          uuid.UUID `json:"productId"`
	ProductName        string    `json:"productName"`
	Code               string    `json:"code"`
	OriginalPriceCents int64     `json:"originalPriceCents"`
	FinalPriceCents    int64     `json:"finalPriceCents"`
	SavingsCents       int64     `json:"savingsCents"`
}

type OffersPageResponse struct {
	Codes    []CodeResponse  `json:"codes"`
	Products []OfferResponse `json:"products"`
}

type CodeValidationResponse struct {
	Valid    bool            `json:"valid"`
	Message  string          `json:"message,omitempty"`
	Code     *CodeResponse   `json:"code,omitempty"`
	Products []OfferResponse `json:"products,omitempty"`
}

func FromCodeViews(views []*queries.CodeView) []CodeResponse {
	resp := make([]CodeResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromOffersPageView(view *queries.OffersPageView) *OffersPageResponse {
	resp := &OffersPageResponse{
		Codes:    FromCodeViews(view.Codes),
		Products: make([]OfferResponse, 0, len(view.Products)),
	}
	_ = copier.Copy(&resp.Products, &view.Products)
	return resp
}

func FromCodeValidationView(view *queries.CodeValidationView) *CodeValidationResponse {
	resp := &CodeValidationResponse{
		Valid:   view.Valid,
		Message: view.Message,
	}
	if view.Code != nil {
		var code CodeResponse
		_ = copier.Copy(&code, view.Code)
		resp.Code = &code
	}
	if len(view.Products) > 0 {
		resp.Products = make([]OfferResponse, 0, len(view.Products))
		_ = copier.Copy(&resp.Products, &view.Products)
	}
	return resp
}
