package components

import (
	"agromarket-api/internal/infra/db"
	"agromarket-api/internal/infra/readstore"
	"agromarket-api/internal/infra/repository"
	"agromarket-api/internal/infra/uow"
	"agromarket-api/internal/usecase"
	"agromarket-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Promotion
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
		// Product
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.OfferCatalogReadStore)),
			fx.As(new(queries.ProductReadStore)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewUserRepository,
		repository.NewPromotionRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
