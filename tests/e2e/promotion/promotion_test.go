//go:build e2e

package promotion_test

import (
	"net/http"
	"testing"
	"time"

	"agromarket-api/internal/domain/user"
	"agromarket-api/internal/handler/dto/response"
	"agromarket-api/tests/common/authtest"
	"agromarket-api/tests/common/dbtest"
	"agromarket-api/tests/common/httptest"
	"agromarket-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	promotionsURL = "/api/promotions"
	offersURL     = "/api/offers"
)

type PromotionSuite struct {
	e2e.SharedSuite
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PromotionSuite))
}

func createBody(code string) map[string]any {
	now := time.Now()
	return map[string]any{
		"code":       code,
		"name":       code + " promotion",
		"kind":       "percentage",
		"percentOff": 10,
		"startsAt":   now.Add(-time.Hour).Format(time.RFC3339),
		"endsAt":     now.Add(72 * time.Hour).Format(time.RFC3339),
	}
}

// =============================================================================
// TestPromotionLifecycle - create, approve, deactivate
// =============================================================================

func (s *PromotionSuite) TestPromotionLifecycle() {
	s.Run("Normal case: promotion becomes visible only after admin approval", func() {
		t := s.T()

		producerID := dbtest.CreateTestUser(t, s.DB, "producer@example.com", string(user.RoleProducer))
		productID := dbtest.CreateTestProduct(t, s.DB, producerID, "Coffee beans 500g", 10000)
		producerToken := authtest.LoginUser(t, s.Router, "producer@example.com", "password123")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		// Producer submits a promotion for an owned product.
		body := createBody("LAUNCH10")
		body["productIds"] = []string{productID.String()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, body, producerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreatePromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.ID)

		// Pending promotions never reach the public offers page.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var page response.OffersPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Empty(t, page.Codes)

		// Admin approves.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			promotionsURL+"/"+created.ID.String()+"/approve", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Now the code is live.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Codes, 1)
		require.Equal(t, "LAUNCH10", page.Codes[0].Code)
		require.Len(t, page.Products, 1)
		require.Equal(t, int64(9000), page.Products[0].FinalPriceCents)

		// Approving twice conflicts.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			promotionsURL+"/"+created.ID.String()+"/approve", nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// Producer deactivates their own promotion.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			promotionsURL+"/"+created.ID.String()+"/deactivate", nil, producerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Empty(t, page.Codes)
	})

	s.Run("Error case: promotion cannot link another producer's products", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "producer@example.com", string(user.RoleProducer))
		rivalID := dbtest.CreateTestUser(t, s.DB, "rival@example.com", string(user.RoleProducer))
		ownProductID := dbtest.CreateTestProduct(t, s.DB, ownerID, "Coffee beans 500g", 10000)
		rivalProductID := dbtest.CreateTestProduct(t, s.DB, rivalID, "Rival honey jar", 8000)
		ownerToken := authtest.LoginUser(t, s.Router, "producer@example.com", "password123")

		body := createBody("POACH10")
		body["productIds"] = []string{rivalProductID.String()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, body, ownerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		// Mixing an owned product in does not help; the whole create rolls back.
		body = createBody("POACH20")
		body["productIds"] = []string{ownProductID.String(), rivalProductID.String()}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL, body, ownerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/mine", nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var mine []response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Empty(t, mine)
	})

	s.Run("Error case: customers cannot create promotions", func() {
		t := s.T()

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL,
			createBody("NOPE10"), customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: producers cannot approve promotions", func() {
		t := s.T()

		producerID := dbtest.CreateTestUser(t, s.DB, "producer@example.com", string(user.RoleProducer))
		producerToken := authtest.LoginUser(t, s.Router, "producer@example.com", "password123")

		now := time.Now()
		percent := float64(10)
		promotionID := dbtest.CreateTestPromotion(t, s.DB, dbtest.PromotionFixture{
			Code: "WAIT10", Kind: "percentage", PercentOff: &percent,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(72 * time.Hour),
			Active: true, ApprovalStatus: "pending", ProducerID: producerID,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			promotionsURL+"/"+promotionID.String()+"/approve", nil, producerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promotionsURL,
			createBody("ANON10"), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestPromotionListing - producer and back-office views
// =============================================================================

func (s *PromotionSuite) TestPromotionListing() {
	s.Run("Normal case: producer sees own promotions in any state", func() {
		t := s.T()

		producerID := dbtest.CreateTestUser(t, s.DB, "producer@example.com", string(user.RoleProducer))
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleProducer))
		producerToken := authtest.LoginUser(t, s.Router, "producer@example.com", "password123")

		now := time.Now()
		percent := float64(10)
		dbtest.CreateTestPromotion(t, s.DB, dbtest.PromotionFixture{
			Code: "MINE10", Kind: "percentage", PercentOff: &percent,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(72 * time.Hour),
			Active: true, ApprovalStatus: "rejected", ProducerID: producerID,
		})
		dbtest.CreateTestPromotion(t, s.DB, dbtest.PromotionFixture{
			Code: "OTHER10", Kind: "percentage", PercentOff: &percent,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(72 * time.Hour),
			Active: true, ApprovalStatus: "approved", ProducerID: otherID,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"/mine", nil, producerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine []response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, "MINE10", mine[0].Code)
		require.Equal(t, "rejected", mine[0].ApprovalStatus)
	})

	s.Run("Normal case: admin filters promotions by approval status", func() {
		t := s.T()

		producerID := dbtest.CreateTestUser(t, s.DB, "producer@example.com", string(user.RoleProducer))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		now := time.Now()
		percent := float64(10)
		dbtest.CreateTestPromotion(t, s.DB, dbtest.PromotionFixture{
			Code: "PEND10", Kind: "percentage", PercentOff: &percent,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(72 * time.Hour),
			Active: true, ApprovalStatus: "pending", ProducerID: producerID,
		})
		dbtest.CreateTestPromotion(t, s.DB, dbtest.PromotionFixture{
			Code: "APPR10", Kind: "percentage", PercentOff: &percent,
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(72 * time.Hour),
			Active: true, ApprovalStatus: "approved", ProducerID: producerID,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL+"?status=pending", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var pending []response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pending))
		require.Len(t, pending, 1)
		require.Equal(t, "PEND10", pending[0].Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var all []response.PromotionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))
		require.Len(t, all, 2)
	})

	s.Run("Error case: producer cannot list all promotions", func() {
		t := s.T()

		producerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "producer@example.com", string(user.RoleProducer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, producerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
