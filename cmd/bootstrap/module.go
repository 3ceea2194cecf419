package bootstrap

import (
	"medverify/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	MigrateModule,
	DBModule,
	RedisModule,
	JWTModule,
	LedgerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
