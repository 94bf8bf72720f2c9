package components

import (
	"vicqa-tradehub/internal/handler"
	"vicqa-tradehub/internal/handler/api"
	"vicqa-tradehub/internal/handler/middleware"
	"vicqa-tradehub/internal/infra/paystack"
	"vicqa-tradehub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewWebhookVerifier,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewProductHandler,
		api.NewVendorHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewWebhookVerifier(cfg config.PaystackConfig) *paystack.Verifier {
	return paystack.NewVerifier(cfg.SecretKey)
}
