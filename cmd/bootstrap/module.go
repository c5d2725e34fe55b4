package bootstrap

import (
	"pawbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.ServicesModule,
	components.UseCaseModule,
	components.HandlerModule,
)
