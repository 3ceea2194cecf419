//go:build unit

package ledger_test

import (
	"context"
	"testing"
	"time"

	"medverify/internal/infra/ledger"
	"medverify/internal/usecase"
	usecasemock "medverify/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CachedGatewayTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	inner   *usecasemock.MockLedgerGateway
	gateway usecase.LedgerGateway
}

func (s *CachedGatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.inner = usecasemock.NewMockLedgerGateway(s.ctrl)
	s.gateway = ledger.NewCachedGateway(s.inner, 8, time.Minute)
}

func TestCachedGatewaySuite(t *testing.T) {
	suite.Run(t, new(CachedGatewayTestSuite))
}

func (s *CachedGatewayTestSuite) TestQuery() {
	ctx := context.Background()
	att := &usecase.LedgerAttestation{Exists: true, IsVerified: true, Name: "Paracetamol 500mg"}

	s.Run("repeat lookups are served from the cache", func() {
		s.SetupTest()
		s.inner.EXPECT().Query(ctx, "MED-0A1B2C3D").Return(att, nil).Times(1)

		for range 3 {
			got, err := s.gateway.Query(ctx, "MED-0A1B2C3D")
			s.Require().NoError(err)
			s.Equal(att, got)
		}
	})

	s.Run("failures are not cached", func() {
		s.SetupTest()
		gomock.InOrder(
			s.inner.EXPECT().Query(ctx, "MED-0A1B2C3D").Return(nil, usecase.ErrLedgerUnavailable),
			s.inner.EXPECT().Query(ctx, "MED-0A1B2C3D").Return(att, nil),
		)

		_, err := s.gateway.Query(ctx, "MED-0A1B2C3D")
		s.Require().ErrorIs(err, usecase.ErrLedgerUnavailable)

		got, err := s.gateway.Query(ctx, "MED-0A1B2C3D")
		s.Require().NoError(err)
		s.Equal(att, got)
	})

	s.Run("entries are keyed by product id", func() {
		s.SetupTest()
		other := &usecase.LedgerAttestation{Exists: true, Name: "Ibuprofen 200mg"}
		s.inner.EXPECT().Query(ctx, "MED-0A1B2C3D").Return(att, nil).Times(1)
		s.inner.EXPECT().Query(ctx, "MED-11223344").Return(other, nil).Times(1)

		got, err := s.gateway.Query(ctx, "MED-0A1B2C3D")
		s.Require().NoError(err)
		s.Equal(att, got)

		got, err = s.gateway.Query(ctx, "MED-11223344")
		s.Require().NoError(err)
		s.Equal(other, got)
	})
}

func (s *CachedGatewayTestSuite) TestWritesPassThrough() {
	ctx := context.Background()

	s.inner.EXPECT().AttestToken(ctx, "hash", "MED-0A1B2C3D").Return("0xref", nil)
	ref, err := s.gateway.AttestToken(ctx, "hash", "MED-0A1B2C3D")
	s.Require().NoError(err)
	s.Equal("0xref", ref)

	s.inner.EXPECT().VerifyToken(ctx, "hash").Return(true, nil)
	ok, err := s.gateway.VerifyToken(ctx, "hash")
	s.Require().NoError(err)
	s.True(ok)
}
