package api

import (
	"net/http"

	reqdto "agromarket-api/internal/handler/dto/request"
	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/handler/httperr"
	"agromarket-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	q queries.OfferQueries
}

func NewOfferHandler(q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{q: q}
}

// @Summary List active offers
// @Description List currently valid promotion codes and the discounted catalog
// @Tags offers
// @Produce json
// @Success 200 {object} resdto.OffersPageResponse
// @Failure 500 {object} httperr.Response
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	view, err := h.q.ListOffers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOffersPageView(view))
}

// @Summary List valid codes
// @Description List currently redeemable promotion codes
// @Tags offers
// @Produce json
// @Success 200 {array} resdto.CodeResponse
// @Failure 500 {object} httperr.Response
// @Router /offers/codes [get]
func (h *OfferHandler) ListCodes(c *gin.Context) {
	views, err := h.q.ListCodes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load codes", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCodeViews(views))
}

// @Summary Validate a promotion code
// @Description Check a user-entered code and return the discounted products.
// @Description An unknown or inactive code is a 200 response with valid=false.
// @Tags offers
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCodeRequest true "Code to validate"
// @Success 200 {object} resdto.CodeValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /offers/validate [post]
func (h *OfferHandler) ValidateCode(c *gin.Context) {
	var req reqdto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.ValidateCode(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to validate code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCodeValidationView(view))
}
