//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"agromarket-api/internal/domain/user"
	"agromarket-api/internal/handler/api"
	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/usecase/commands"
	"agromarket-api/internal/usecase/queries"
	"agromarket-api/tests/common/httptest"
	commandsmock "agromarket-api/tests/mock/commands"
	queriesmock "agromarket-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromotionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromotionCommands
	mockQueries  *queriesmock.MockPromotionQueries
	handler      *api.PromotionHandler
	producerID   uuid.UUID
}

func (s *PromotionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.producerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromotionQueries(s.mockCtrl)
	s.handler = api.NewPromotionHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := s.fakeAuth(s.producerID, user.RoleProducer)

	s.router.POST("/promotions", authMiddleware, s.handler.Create)
	s.router.GET("/promotions/mine", authMiddleware, s.handler.ListMine)
	s.router.GET("/promotions", authMiddleware, s.handler.List)
	s.router.POST("/promotions/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/promotions/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/promotions/:id/deactivate", authMiddleware, s.handler.Deactivate)
}

func (s *PromotionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PromotionHandlerTestSuite) fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func (s *PromotionHandlerTestSuite) adminRouter(adminID uuid.UUID) *gin.Engine {
	router := gin.New()
	authMiddleware := s.fakeAuth(adminID, user.RoleAdmin)
	router.GET("/promotions", authMiddleware, s.handler.List)
	router.POST("/promotions/:id/approve", authMiddleware, s.handler.Approve)
	router.POST("/promotions/:id/reject", authMiddleware, s.handler.Reject)
	router.POST("/promotions/:id/deactivate", authMiddleware, s.handler.Deactivate)
	return router
}

func TestPromotionHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromotionHandlerTestSuite))
}

func validCreateBody() map[string]any {
	return map[string]any{
		"code":       "SAVE10",
		"name":       "Ten percent off",
		"kind":       "percentage",
		"percentOff": 10,
		"startsAt":   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		"endsAt":     time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
		"productIds": []string{uuid.NewString()},
	}
}

func samplePromotionView(producerID uuid.UUID) *queries.PromotionView {
	percent := float64(10)
	return &queries.PromotionView{
		ID:             uuid.New(),
		Code:           "SAVE10",
		Name:           "Ten percent off",
		Kind:           "percentage",
		PercentOff:     &percent,
		StartsAt:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
		Active:         true,
		ApprovalStatus: "pending",
		ProducerID:     producerID,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PromotionHandlerTestSuite) TestCreate() {
	url := "/promotions"

	s.Run("success: returns 201 Created with the new promotion id", func() {
		promotionID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.producerID).
			Return(&commands.CreatePromotionResult{PromotionID: promotionID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")

		var response resdto.CreatePromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(promotionID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: func(m map[string]any) { delete(m, "code") }},
			{name: "code too short", mutate: func(m map[string]any) { m["code"] = "AB" }},
			{name: "missing name", mutate: func(m map[string]any) { delete(m, "name") }},
			{name: "unknown kind", mutate: func(m map[string]any) { m["kind"] = "raffle" }},
			{name: "percent above 100", mutate: func(m map[string]any) { m["percentOff"] = 101 }},
			{name: "missing window", mutate: func(m map[string]any) { delete(m, "endsAt") }},
			{name: "malformed product id", mutate: func(m map[string]any) { m["productIds"] = []string{"not-a-uuid"} }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := validCreateBody()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request when the command fails", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.producerID).
			Return(nil, errors.New("window already ended")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create promotion failed")
	})

	s.Run("error: 400 Bad Request when a linked product is not owned", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.producerID).
			Return(nil, commands.ErrProductNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Product not found or not owned")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *PromotionHandlerTestSuite) TestListMine() {
	url := "/promotions/mine"

	s.Run("success: returns the caller's promotions", func() {
		views := []*queries.PromotionView{samplePromotionView(s.producerID)}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.producerID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("SAVE10", response[0].Code)
		s.Equal("pending", response[0].ApprovalStatus)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.producerID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load promotions")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *PromotionHandlerTestSuite) TestList() {
	url := "/promotions"

	s.Run("success: admin lists all promotions", func() {
		adminID := uuid.New()
		router := s.adminRouter(adminID)

		views := []*queries.PromotionView{samplePromotionView(uuid.New())}
		s.mockQueries.EXPECT().List(gomock.Any(), (*string)(nil), string(user.RoleAdmin)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: status filter is forwarded", func() {
		router := s.adminRouter(uuid.New())

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), string(user.RoleAdmin)).
			DoAndReturn(func(_ context.Context, status *string, _ string) ([]*queries.PromotionView, error) {
				s.Require().NotNil(status)
				s.Equal("pending", *status)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, url+"?status=pending", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for non-admin", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*string)(nil), string(user.RoleProducer)).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

// ================================================================================
// TestReview
// ================================================================================

func (s *PromotionHandlerTestSuite) TestReview() {
	promotionID := uuid.New()

	s.Run("success: approve returns 204 No Content", func() {
		router := s.adminRouter(uuid.New())
		s.mockCommands.EXPECT().Approve(gomock.Any(), promotionID, string(user.RoleAdmin)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost,
			"/promotions/"+promotionID.String()+"/approve", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: reject returns 204 No Content", func() {
		router := s.adminRouter(uuid.New())
		s.mockCommands.EXPECT().Reject(gomock.Any(), promotionID, string(user.RoleAdmin)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), router, http.MethodPost,
			"/promotions/"+promotionID.String()+"/reject", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/promotions/invalid-uuid/approve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "non-admin actor",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Insufficient permissions",
			},
			{
				name:           "promotion not found",
				commandsError:  commands.ErrPromotionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Promotion not found",
			},
			{
				name:           "already reviewed",
				commandsError:  commands.ErrNotReviewable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Promotion already reviewed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Review failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), promotionID, string(user.RoleProducer)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
					"/promotions/"+promotionID.String()+"/approve", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *PromotionHandlerTestSuite) TestDeactivate() {
	promotionID := uuid.New()
	url := "/promotions/" + promotionID.String() + "/deactivate"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), promotionID, s.producerID, string(user.RoleProducer)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when not the owner", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), promotionID, s.producerID, string(user.RoleProducer)).
			Return(commands.ErrPromotionNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Promotion not owned")
	})

	s.Run("error: 404 Not Found for missing promotion", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), promotionID, s.producerID, string(user.RoleProducer)).
			Return(commands.ErrPromotionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promotion not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
