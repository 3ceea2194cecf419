package components

import (
	"medverify/internal/pkg/clock"
	"medverify/internal/pkg/config"
	"medverify/internal/pkg/jwt"
	"medverify/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewTokenService,
		NewVerifier,
		usecase.NewMedicineUseCase,
		usecase.NewStatsQueries,
		NewAuthUseCase,
	),
)

func NewTokenService(
	store usecase.TokenStore,
	ledger usecase.LedgerGateway,
	clk clock.Clock,
	cfg config.Config,
) usecase.TokenService {
	return usecase.NewTokenService(store, ledger, clk, cfg.QR.TokenTTL, cfg.Ledger.Timeout)
}

func NewVerifier(
	registry usecase.RegistryStore,
	ledger usecase.LedgerGateway,
	tokens usecase.TokenService,
	audit usecase.AuditStore,
	stats usecase.StatsCounter,
	clk clock.Clock,
	cfg config.Config,
) usecase.Verifier {
	return usecase.NewVerifier(registry, ledger, tokens, audit, stats, clk, cfg.QR.TokenTTL)
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Auth.ManufacturerKeyHash, jwtService)
}
