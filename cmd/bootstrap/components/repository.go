package components

import (
	"medverify/internal/infra/audit"
	"medverify/internal/infra/registry"
	"medverify/internal/infra/tokens"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		registry.NewStore,
		tokens.NewStore,
		audit.NewStore,
		audit.NewCounters,
	),
)
