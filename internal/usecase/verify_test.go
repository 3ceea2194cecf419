//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/domain/qrtoken"
	"medverify/internal/domain/verdict"
	"medverify/internal/pkg/clock"
	"medverify/internal/pkg/errs"
	"medverify/internal/usecase"
	usecasemock "medverify/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testProductID = "MED-0A1B2C3D"
	testAddr      = "203.0.113.7"
	qrTTL         = 5 * time.Minute
)

type VerifierTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	registry *usecasemock.MockRegistryStore
	ledger   *usecasemock.MockLedgerGateway
	tokens   *usecasemock.MockTokenService
	audit    *usecasemock.MockAuditStore
	stats    *usecasemock.MockStatsCounter
	clock    *clock.MockClock
	verifier usecase.Verifier
}

func (s *VerifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = usecasemock.NewMockRegistryStore(s.ctrl)
	s.ledger = usecasemock.NewMockLedgerGateway(s.ctrl)
	s.tokens = usecasemock.NewMockTokenService(s.ctrl)
	s.audit = usecasemock.NewMockAuditStore(s.ctrl)
	s.stats = usecasemock.NewMockStatsCounter(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.verifier = usecase.NewVerifier(s.registry, s.ledger, s.tokens, s.audit, s.stats, s.clock, qrTTL)
}

func (s *VerifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVerifierSuite(t *testing.T) {
	suite.Run(t, new(VerifierTestSuite))
}

func (s *VerifierTestSuite) freshMedicine() *medicine.Medicine {
	manufactured := s.clock.Now().AddDate(0, -6, 0)
	expiry := s.clock.Now().AddDate(1, 0, 0)
	return medicine.Reconstruct(
		testProductID, "Paracetamol 500mg", "Acme Pharma", "BATCH-001",
		manufactured, expiry, nil, s.clock.Now().AddDate(0, -6, 0),
	)
}

func (s *VerifierTestSuite) expiredMedicine() *medicine.Medicine {
	manufactured := s.clock.Now().AddDate(-3, 0, 0)
	expiry := s.clock.Now().AddDate(-1, 0, 0)
	return medicine.Reconstruct(
		testProductID, "Paracetamol 500mg", "Acme Pharma", "BATCH-001",
		manufactured, expiry, nil, manufactured,
	)
}

func (s *VerifierTestSuite) verifiedAttestation(m *medicine.Medicine) *usecase.LedgerAttestation {
	return &usecase.LedgerAttestation{
		Exists:          true,
		IsVerified:      true,
		Name:            m.Name(),
		Manufacturer:    m.Manufacturer(),
		ManufactureDate: m.ManufactureDate(),
		ExpiryDate:      m.ExpiryDate(),
	}
}

func (s *VerifierTestSuite) expectAudit(status verdict.Status, method string) {
	s.audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *usecase.Attempt) error {
			s.Equal(testProductID, a.ProductID)
			s.Equal(status, a.Status)
			s.Equal(method, a.Method)
			s.Equal(testAddr, a.RequesterAddr)
			return nil
		})
	s.stats.EXPECT().Record(gomock.Any(), status).Return(nil)
}

func (s *VerifierTestSuite) TestVerifyByProductID() {
	s.Run("authentic: registered, attested, not expired", func() {
		s.SetupTest()
		m := s.freshMedicine()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(s.verifiedAttestation(m), nil)
		s.expectAudit(verdict.StatusAuthentic, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusAuthentic, res.Status)
		s.Equal(verdict.ConfidenceHigh, res.Confidence)
		s.True(res.IsValid())
		s.False(res.IsExpired)
		s.True(res.BlockchainVerified)
		s.Equal(verdict.MsgAuthentic, res.Message)
		s.Equal(verdict.Checks{DatabaseFound: true, BlockchainVerified: true, NotExpired: true}, res.Checks)
		s.Empty(res.Warnings)
		s.Equal(m, res.Medicine)
	})

	s.Run("expired: attested but past expiry date", func() {
		s.SetupTest()
		m := s.expiredMedicine()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(s.verifiedAttestation(m), nil)
		s.expectAudit(verdict.StatusExpired, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusExpired, res.Status)
		s.Equal(verdict.ConfidenceHigh, res.Confidence)
		s.False(res.IsValid())
		s.True(res.IsExpired)
		s.True(res.BlockchainVerified)
		s.Equal(verdict.MsgExpired, res.Message)
		s.False(res.Checks.NotExpired)
	})

	s.Run("not found: unknown product is a verdict, not an error", func() {
		s.SetupTest()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).
			Return(nil, usecase.ErrRegistryNotFound)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).
			Return(nil, usecase.ErrLedgerNotFound).MaxTimes(1)
		s.expectAudit(verdict.StatusNotFound, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusNotFound, res.Status)
		s.Equal(verdict.ConfidenceHigh, res.Confidence)
		s.Equal(verdict.MsgNotFound, res.Message)
		s.Nil(res.Medicine)
		s.Contains(res.Warnings, verdict.WarnNotRegistered)
	})

	s.Run("ledger down: suspicious, never counterfeit", func() {
		s.SetupTest()
		m := s.freshMedicine()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).
			Return(nil, errs.Mark(errs.New("connection refused"), usecase.ErrLedgerUnavailable))
		s.expectAudit(verdict.StatusSuspicious, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusSuspicious, res.Status)
		s.Equal(verdict.ConfidenceMedium, res.Confidence)
		s.NotEqual(verdict.StatusCounterfeit, res.Status)
		s.False(res.BlockchainVerified)
		s.Contains(res.Warnings, verdict.WarnLedgerUnreached)
		s.NotContains(res.Warnings, verdict.WarnLedgerUnverified)
	})

	s.Run("attested but unverified: suspicious with warning", func() {
		s.SetupTest()
		m := s.freshMedicine()
		att := s.verifiedAttestation(m)
		att.IsVerified = false
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(att, nil)
		s.expectAudit(verdict.StatusSuspicious, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusSuspicious, res.Status)
		s.Contains(res.Warnings, verdict.WarnLedgerUnverified)
	})

	s.Run("attestation diverges from registry: authentic plus mismatch warning", func() {
		s.SetupTest()
		m := s.freshMedicine()
		att := s.verifiedAttestation(m)
		att.Name = "Something Else 250mg"
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(att, nil)
		s.expectAudit(verdict.StatusAuthentic, usecase.MethodDirect)

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusAuthentic, res.Status)
		s.Contains(res.Warnings, verdict.WarnLedgerMismatch)
	})

	s.Run("registry outage: surfaces an error, writes no audit row", func() {
		s.SetupTest()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).
			Return(nil, errs.New("connection reset"))
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(nil, usecase.ErrLedgerNotFound).MaxTimes(1)

		_, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().Error(err)
	})

	s.Run("audit failure never affects the verdict", func() {
		s.SetupTest()
		m := s.freshMedicine()
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(s.verifiedAttestation(m), nil)
		s.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errs.New("audit store down"))
		s.stats.EXPECT().Record(gomock.Any(), verdict.StatusAuthentic).Return(errs.New("redis down"))

		res, err := s.verifier.VerifyByProductID(context.Background(), testProductID, testAddr)
		s.Require().NoError(err)
		s.Equal(verdict.StatusAuthentic, res.Status)
	})
}

func (s *VerifierTestSuite) freshPayload() (qrtoken.Payload, string) {
	tok, err := qrtoken.New(testProductID, qrTTL, s.clock.Now())
	s.Require().NoError(err)
	payload := tok.RenderPayload()
	encoded, err := payload.Encode()
	s.Require().NoError(err)
	return payload, encoded
}

func (s *VerifierTestSuite) TestVerifyByQR() {
	s.Run("malformed payload: 400-class error, nothing consumed or logged", func() {
		s.SetupTest()
		_, err := s.verifier.VerifyByQR(context.Background(), "not-a-qr-payload", testAddr)
		s.Require().ErrorIs(err, usecase.ErrInvalidQRFormat)
	})

	s.Run("stale embedded timestamp: expired verdict without touching the store", func() {
		s.SetupTest()
		_, encoded := s.freshPayload()
		s.clock.Add(qrTTL + time.Second)
		s.expectAudit(verdict.StatusSuspicious, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusSuspicious, res.Status)
		s.Equal(verdict.MsgQRExpired, res.Message)
		s.Contains(res.Warnings, verdict.WarnQRExpiredTamper)
	})

	s.Run("token expired server side", func() {
		s.SetupTest()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeExpired, nil)
		s.expectAudit(verdict.StatusSuspicious, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusSuspicious, res.Status)
		s.Equal(verdict.MsgQRExpired, res.Message)
	})

	s.Run("unknown token: counterfeit", func() {
		s.SetupTest()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeNotFound, nil)
		s.expectAudit(verdict.StatusCounterfeit, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusCounterfeit, res.Status)
		s.Equal(verdict.ConfidenceHigh, res.Confidence)
		s.Equal(verdict.MsgQRNotFound, res.Message)
		s.Contains(res.Warnings, verdict.WarnNotRegistered)
	})

	s.Run("replayed token: suspicious, qr itself was valid", func() {
		s.SetupTest()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeAlreadyUsed, nil)
		s.expectAudit(verdict.StatusSuspicious, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusSuspicious, res.Status)
		s.Equal(verdict.MsgQRAlreadyUsed, res.Message)
		s.True(res.Checks.QRValid)
		s.False(res.Checks.QRNotUsed)
		s.Contains(res.Warnings, verdict.WarnQRReplay)
	})

	s.Run("consumed and ledger-attested: authentic via qr", func() {
		s.SetupTest()
		m := s.freshMedicine()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeConsumed, nil)
		s.ledger.EXPECT().VerifyToken(gomock.Any(), payload.Hash).Return(true, nil)
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(s.verifiedAttestation(m), nil)
		s.expectAudit(verdict.StatusAuthentic, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusAuthentic, res.Status)
		s.Equal(verdict.MsgQRAuthentic, res.Message)
		s.True(res.Checks.QRValid)
		s.True(res.Checks.QRNotUsed)
		s.Empty(res.Warnings)
	})

	s.Run("token not attested on ledger: counterfeit", func() {
		s.SetupTest()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeConsumed, nil)
		s.ledger.EXPECT().VerifyToken(gomock.Any(), payload.Hash).Return(false, nil)
		s.expectAudit(verdict.StatusCounterfeit, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusCounterfeit, res.Status)
		s.Equal(verdict.MsgCounterfeit, res.Message)
		s.Contains(res.Warnings, verdict.WarnQRNotAttested)
	})

	s.Run("ledger unreachable during token check: warning, flow continues", func() {
		s.SetupTest()
		m := s.freshMedicine()
		payload, encoded := s.freshPayload()
		s.tokens.EXPECT().ValidateAndConsume(gomock.Any(), payload.Hash, testProductID).
			Return(usecase.ConsumeConsumed, nil)
		s.ledger.EXPECT().VerifyToken(gomock.Any(), payload.Hash).
			Return(false, errs.Mark(errs.New("timeout"), usecase.ErrLedgerUnavailable))
		s.registry.EXPECT().FindByProductID(gomock.Any(), testProductID).Return(m, nil)
		s.ledger.EXPECT().Query(gomock.Any(), testProductID).Return(s.verifiedAttestation(m), nil)
		s.expectAudit(verdict.StatusAuthentic, usecase.MethodQR)

		res, err := s.verifier.VerifyByQR(context.Background(), encoded, testAddr)
		s.Require().NoError(err)

		s.Equal(verdict.StatusAuthentic, res.Status)
		s.Contains(res.Warnings, verdict.WarnQRUnconfirmed)
	})
}
