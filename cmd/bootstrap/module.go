package bootstrap

import (
	"booking-holds/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	IdentityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
