package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "agromarket-api/internal/handler/dto/request"
	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/handler/httperr"
	"agromarket-api/internal/handler/middleware"
	"agromarket-api/internal/pkg/ptr"
	"agromarket-api/internal/usecase/commands"
	"agromarket-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("request is not authenticated")

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Create promotion
// @Description Submit a new promotion for admin approval
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromotionRequest true "Create promotion request"
// @Success 201 {object} resdto.CreatePromotionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /promotions [post]
func (h *PromotionHandler) Create(c *gin.Context) {
	producerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product IDs", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd, producerID)
	if err != nil {
		if errors.Is(err, commands.ErrProductNotOwned) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Product not found or not owned", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create promotion failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatePromotionResponse{ID: result.PromotionID})
}

// @Summary List own promotions
// @Description List the calling producer's promotions in any approval state
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromotionResponse
// @Failure 401 {object} httperr.Response
// @Router /promotions/mine [get]
func (h *PromotionHandler) ListMine(c *gin.Context) {
	producerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), producerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary List promotions
// @Description List all promotions, optionally filtered by approval status
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Approval status filter" Enums(pending, approved, rejected)
// @Success 200 {array} resdto.PromotionResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /promotions [get]
func (h *PromotionHandler) List(c *gin.Context) {
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		status = ptr.To(raw)
	}

	views, err := h.q.List(c.Request.Context(), status, role.String())
	if err != nil {
		if errors.Is(err, queries.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}

// @Summary Approve promotion
// @Description Approve a pending promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/approve [post]
func (h *PromotionHandler) Approve(c *gin.Context) {
	h.reviewAction(c, h.cmds.Approve)
}

// @Summary Reject promotion
// @Description Reject a pending promotion
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/reject [post]
func (h *PromotionHandler) Reject(c *gin.Context) {
	h.reviewAction(c, h.cmds.Reject)
}

func (h *PromotionHandler) reviewAction(c *gin.Context, action func(ctx context.Context, id uuid.UUID, actorRole string) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err = action(c.Request.Context(), id, role.String()); err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
		case errors.Is(err, commands.ErrPromotionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
		case errors.Is(err, commands.ErrNotReviewable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Promotion already reviewed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Review failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate promotion
// @Description Deactivate an active promotion. Producers can only deactivate their own.
// @Tags promotions
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /promotions/{id}/deactivate [post]
func (h *PromotionHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err = h.cmds.Deactivate(c.Request.Context(), id, actorID, role.String()); err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Promotion not found", nil)
		case errors.Is(err, commands.ErrPromotionNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Promotion not owned", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Deactivate failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
