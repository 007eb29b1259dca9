package bootstrap

import (
	"gymgain/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	SessionModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
