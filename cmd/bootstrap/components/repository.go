package components

import (
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/infra/readstore"
	repo_impl "hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/infra/writerepo"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(usecase.RoomRepository)),
			fx.As(new(usecase.ExtraRepository)),
		),
		fx.Annotate(
			writerepo.NewBookingWriteRepo,
			fx.As(new(usecase.BookingRepository)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		NewCatalogViewRepo,
	),
)

// NewCatalogViewRepo layers the Redis read-through cache over the catalog
// read store.
func NewCatalogViewRepo(pool *pgxpool.Pool, rdb *redis.Client, cfg config.Config) queries.CatalogViewRepo {
	return cache.NewCachedCatalogRepo(readstore.NewCatalogReadStore(pool), rdb, cfg.Redis.CatalogTTL)
}
