//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"medverify/internal/domain/verdict"
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

type VerifyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockVerifier *usecasemock.MockVerifier
	mockStats    *usecasemock.MockStatsQueries
	handler      *api.VerifyHandler
}

func (s *VerifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVerifier = usecasemock.NewMockVerifier(s.mockCtrl)
	s.mockStats = usecasemock.NewMockStatsQueries(s.mockCtrl)
	s.handler = api.NewVerifyHandler(s.mockVerifier, s.mockStats)

	s.router.POST("/verify", s.handler.Verify)
	s.router.POST("/verify/qr", s.handler.VerifyQR)
	s.router.GET("/verify/logs", s.handler.Logs)
}

func (s *VerifyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerifyHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerifyHandlerTestSuite))
}

func (s *VerifyHandlerTestSuite) TestVerify() {
	url := "/verify"

	s.Run("success: returns the full verdict shape", func() {
		s.mockVerifier.EXPECT().VerifyByProductID(gomock.Any(), "MED-0A1B2C3D", gomock.Any()).
			Return(&usecase.Result{
				Status:             verdict.StatusAuthentic,
				Confidence:         verdict.ConfidenceHigh,
				Message:            verdict.MsgAuthentic,
				BlockchainVerified: true,
				Checks:             verdict.Checks{DatabaseFound: true, BlockchainVerified: true, NotExpired: true},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"productId": "MED-0A1B2C3D"}, "")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsValid)
		s.Equal(verdict.StatusAuthentic, response.Status)
		s.Equal(verdict.MsgAuthentic, response.Message)
		s.Nil(response.Medicine)
		s.NotNil(response.Warnings, "warnings must serialize as an array, not null")
	})

	s.Run("success: not found is still a 200 verdict", func() {
		s.mockVerifier.EXPECT().VerifyByProductID(gomock.Any(), "MED-FFFFFFFF", gomock.Any()).
			Return(&usecase.Result{
				Status:     verdict.StatusNotFound,
				Confidence: verdict.ConfidenceHigh,
				Message:    verdict.MsgNotFound,
				Warnings:   []string{verdict.WarnNotRegistered},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"productId": "MED-FFFFFFFF"}, "")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsValid)
		s.Equal(verdict.StatusNotFound, response.Status)
	})

	s.Run("error: 400 on missing productId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 on engine failure", func() {
		s.mockVerifier.EXPECT().VerifyByProductID(gomock.Any(), "MED-0A1B2C3D", gomock.Any()).
			Return(nil, errs.New("registry down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"productId": "MED-0A1B2C3D"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

func (s *VerifyHandlerTestSuite) TestVerifyQR() {
	url := "/verify/qr"

	s.Run("success: consumes and verifies", func() {
		s.mockVerifier.EXPECT().VerifyByQR(gomock.Any(), "some-qr-data", gomock.Any()).
			Return(&usecase.Result{
				Status:     verdict.StatusSuspicious,
				Confidence: verdict.ConfidenceMedium,
				Message:    verdict.MsgQRAlreadyUsed,
				Checks:     verdict.Checks{QRValid: true},
				Warnings:   []string{verdict.WarnQRReplay},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"qrData": "some-qr-data"}, "")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(verdict.StatusSuspicious, response.Status)
		s.Contains(response.Warnings, verdict.WarnQRReplay)
	})

	s.Run("error: 400 on malformed QR payload", func() {
		s.mockVerifier.EXPECT().VerifyByQR(gomock.Any(), "garbage", gomock.Any()).
			Return(nil, usecase.ErrInvalidQRFormat)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"qrData": "garbage"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid QR code format")
	})

	s.Run("error: 400 on missing qrData", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *VerifyHandlerTestSuite) TestLogs() {
	s.Run("success: returns counters", func() {
		s.mockStats.EXPECT().VerificationStats(gomock.Any()).
			Return(usecase.Stats{Total: 10, Successful: 7, Failed: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/verify/logs", nil, "")

		var response resdto.VerificationStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10), response.Total)
		s.Equal(int64(7), response.Successful)
		s.Equal(int64(3), response.Failed)
	})

	s.Run("error: 500 when counters unreachable", func() {
		s.mockStats.EXPECT().VerificationStats(gomock.Any()).
			Return(usecase.Stats{}, errs.New("redis down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/verify/logs", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
