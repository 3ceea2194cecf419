//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"medverify/internal/handler/api"
	resdto "medverify/internal/handler/dto/response"
	"medverify/internal/pkg/errs"
	"medverify/internal/usecase"
	"medverify/tests/common/httptest"
	usecasemock "medverify/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth)

	s.router.POST("/auth/token", s.handler.IssueToken)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestIssueToken() {
	url := "/auth/token"

	s.Run("success: exchanges the api key for a bearer token", func() {
		s.mockAuth.EXPECT().IssueToken("valid-key").Return("signed-jwt", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"apiKey": "valid-key"}, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-jwt", response.AccessToken)
		s.Equal("Bearer", response.TokenType)
	})

	s.Run("error: 401 on wrong key", func() {
		s.mockAuth.EXPECT().IssueToken("wrong-key").Return("", usecase.ErrInvalidAPIKey)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"apiKey": "wrong-key"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid API key")
	})

	s.Run("error: 400 on missing apiKey", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 on signing failure", func() {
		s.mockAuth.EXPECT().IssueToken("valid-key").Return("", errs.New("signing failed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"apiKey": "valid-key"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
