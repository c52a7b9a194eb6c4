package bootstrap

import (
	"booking-holds/internal/pkg/config"
	"booking-holds/internal/pkg/identity"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewIdentityVerifier,
	),
)

func NewIdentityVerifier(cfg config.Config) *identity.Verifier {
	return identity.NewVerifier(cfg.Identity.Secret)
}
