package components

import (
	"vicqa-tradehub/internal/infra/mail"
	"vicqa-tradehub/internal/infra/readstore"
	"vicqa-tradehub/internal/infra/redisstore"
	"vicqa-tradehub/internal/infra/writerepo"
	"vicqa-tradehub/internal/pkg/config"
	"vicqa-tradehub/internal/usecase/commands"
	"vicqa-tradehub/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	writerepoModule,
	cartStoreModule,
	notifierModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		// The product write repository also serves catalog lookups during
		// cart materialization, so it binds to both ports.
		fx.Annotate(
			writerepo.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.CatalogLookup)),
		),
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewVendorRepository,
			fx.As(new(commands.VendorRepository)),
		),
	),
)

var cartStoreModule = fx.Module("persistence/cartstore",
	fx.Provide(
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
			fx.As(new(queries.CartReader)),
		),
	),
)

var notifierModule = fx.Module("persistence/notifier",
	fx.Provide(
		fx.Annotate(
			mail.NewAdminNotifier,
			fx.As(new(commands.AdminNotifier)),
		),
	),
)

func NewCartStore(client *redis.Client, cfg config.Config) *redisstore.CartStore {
	return redisstore.NewCartStore(client, cfg.Checkout.CartTTL)
}
