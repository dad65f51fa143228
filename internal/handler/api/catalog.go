package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/handler/httperr"
	"agromarket-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.ProductQueries
}

func NewCatalogHandler(q queries.ProductQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description List active catalog products with keyset pagination
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size (max 200)"
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	page, err := h.q.ListProducts(c.Request.Context(), limit, c.Query("cursor"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductListPage(page))
}
