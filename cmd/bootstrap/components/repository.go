package components

import (
	"booking-holds/internal/infra/readstore"
	"booking-holds/internal/infra/repository"
	"booking-holds/internal/infra/uow"
	"booking-holds/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewHoldReadStore,
			fx.As(new(queries.HoldReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
