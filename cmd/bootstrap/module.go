package bootstrap

import (
	"vicqa-tradehub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	StaticModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
