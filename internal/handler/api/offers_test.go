//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"agromarket-api/internal/handler/api"
	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/usecase/queries"
	"agromarket-api/tests/common/httptest"
	queriesmock "agromarket-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockOfferQueries
	handler     *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockQueries)

	s.router.GET("/offers", s.handler.ListOffers)
	s.router.GET("/offers/codes", s.handler.ListCodes)
	s.router.POST("/offers/validate", s.handler.ValidateCode)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func sampleCodeView() *queries.CodeView {
	percent := float64(10)
	return &queries.CodeView{
		ID:            uuid.New(),
		Code:          "SAVE10",
		Name:          "Ten percent off",
		Kind:          "percentage",
		PercentOff:    &percent,
		DisplayValue:  "10% off",
		StartsAt:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		EndsAt:        time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC),
		DaysRemaining: 3,
	}
}

func sampleOfferView() queries.OfferView {
	return queries.OfferView{
		ProductID:          uuid.New(),
		ProductName:        "Coffee beans 500g",
		Code:               "SAVE10",
		OriginalPriceCents: 10000,
		FinalPriceCents:    9000,
		SavingsCents:       1000,
	}
}

// ================================================================================
// TestListOffers
// ================================================================================

func (s *OfferHandlerTestSuite) TestListOffers() {
	url := "/offers"

	s.Run("success: returns codes and discounted products", func() {
		view := &queries.OffersPageView{
			Codes:    []*queries.CodeView{sampleCodeView()},
			Products: []queries.OfferView{sampleOfferView()},
		}
		s.mockQueries.EXPECT().ListOffers(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OffersPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Codes, 1)
		s.Equal("SAVE10", response.Codes[0].Code)
		s.Len(response.Products, 1)
		s.Equal(int64(9000), response.Products[0].FinalPriceCents)
	})

	s.Run("success: empty page when nothing is on offer", func() {
		view := &queries.OffersPageView{Codes: []*queries.CodeView{}, Products: []queries.OfferView{}}
		s.mockQueries.EXPECT().ListOffers(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OffersPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Codes)
		s.Empty(response.Products)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListOffers(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load offers")
	})
}

// ================================================================================
// TestListCodes
// ================================================================================

func (s *OfferHandlerTestSuite) TestListCodes() {
	url := "/offers/codes"

	s.Run("success: returns valid codes", func() {
		s.mockQueries.EXPECT().ListCodes(gomock.Any()).
			Return([]*queries.CodeView{sampleCodeView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("SAVE10", response[0].Code)
		s.Equal("10% off", response[0].DisplayValue)
		s.Equal(3, response[0].DaysRemaining)
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListCodes(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load codes")
	})
}

// ================================================================================
// TestValidateCode
// ================================================================================

func (s *OfferHandlerTestSuite) TestValidateCode() {
	url := "/offers/validate"

	s.Run("success: valid code returns 200 with offers", func() {
		view := &queries.CodeValidationView{
			Valid:    true,
			Code:     sampleCodeView(),
			Products: []queries.OfferView{sampleOfferView()},
		}
		s.mockQueries.EXPECT().ValidateCode(gomock.Any(), "SAVE10").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"code": "SAVE10"}, "")

		var response resdto.CodeValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.NotNil(response.Code)
		s.Len(response.Products, 1)
	})

	s.Run("success: rejected code is still a 200", func() {
		view := &queries.CodeValidationView{Valid: false, Message: "code not found"}
		s.mockQueries.EXPECT().ValidateCode(gomock.Any(), "NOPE").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"code": "NOPE"}, "")

		var response resdto.CodeValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal("code not found", response.Message)
		s.Nil(response.Code)
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ValidateCode(gomock.Any(), "SAVE10").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"code": "SAVE10"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to validate code")
	})
}
