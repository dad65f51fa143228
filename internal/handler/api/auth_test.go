//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	httprec "net/http/httptest"
	"testing"

	"agromarket-api/internal/handler/api"
	resdto "agromarket-api/internal/handler/dto/response"
	"agromarket-api/internal/pkg/config"
	"agromarket-api/internal/pkg/cookie"
	"agromarket-api/internal/pkg/jwt"
	"agromarket-api/internal/usecase"
	"agromarket-api/internal/usecase/readmodel"
	"agromarket-api/tests/common/httptest"
	usecasemock "agromarket-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, &jwt.Service{}, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// Auth endpoints use a flat {"error": "..."} body.
func (s *AuthHandlerTestSuite) assertAuthError(rec *httprec.ResponseRecorder, expectedStatus int, expectedMsg string) {
	s.Equal(expectedStatus, rec.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(expectedMsg, body["error"])
}

func sampleUser() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       uuid.New(),
		Email:    "producer@example.com",
		Role:     "producer",
		IsActive: true,
	}
}

func sampleTokens() *usecase.TokenPair {
	return &usecase.TokenPair{AccessToken: "test-access-token", RefreshToken: "test-refresh-token"}
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]string{"email": "producer@example.com", "password": "password123"}

	s.Run("success: returns 200 OK with token and cookies", func() {
		returnUser := sampleUser()
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(sampleTokens(), returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-access-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("test-access-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)

		refreshCookie := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)
		s.Equal("test-refresh-token", refreshCookie.Value)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		testCases := []struct {
			name string
			body map[string]string
		}{
			{name: "missing email", body: map[string]string{"password": "password123"}},
			{name: "invalid email", body: map[string]string{"email": "not-an-email", "password": "password123"}},
			{name: "missing password", body: map[string]string{"email": "producer@example.com"}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				usecaseError:   usecase.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "unknown user",
				usecaseError:   usecase.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "inactive account",
				usecaseError:   usecase.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.assertAuthError(rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: refresh token from cookie", func() {
		returnUser := sampleUser()
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "cookie-refresh-token").
			Return(sampleTokens(), returnUser, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-access-token", response.AccessToken)
	})

	s.Run("success: refresh token from body when no cookie", func() {
		returnUser := sampleUser()
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "body-refresh-token").
			Return(sampleTokens(), returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"refresh_token": "body-refresh-token"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.assertAuthError(rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: 401 Unauthorized for invalid token", func() {
		s.mockUseCase.EXPECT().Refresh(gomock.Any(), "stale-token").
			Return(nil, nil, usecase.ErrTokenValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"refresh_token": "stale-token"}, "")
		s.assertAuthError(rec, http.StatusUnauthorized, "Invalid or expired refresh token")
	})
}

// ================================================================================
// TestLogout
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: clears token cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user", func() {
		returnUser := sampleUser()
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response readmodel.AuthorizedUserRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
		s.Equal(returnUser.Role, response.Role)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.assertAuthError(rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.assertAuthError(rec, http.StatusNotFound, "User not found")
	})
}
