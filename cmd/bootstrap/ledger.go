package bootstrap

import (
	"medverify/internal/infra/ledger"
	"medverify/internal/pkg/config"
	"medverify/internal/usecase"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewLedgerGateway,
	),
)

// NewLedgerGateway wraps the HTTP client in the read-through LRU cache so that
// repeated verifications of the same product do not hammer the ledger.
func NewLedgerGateway(cfg config.Config) usecase.LedgerGateway {
	client := ledger.NewClient(cfg.Ledger)
	return ledger.NewCachedGateway(client, cfg.Ledger.CacheSize, cfg.Ledger.CacheTTL)
}
