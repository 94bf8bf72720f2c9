package bootstrap

import (
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/infra/staticdata"
	"vicqa-tradehub/internal/pkg/config"

	"go.uber.org/fx"
)

// StaticModule provides the process-wide shipping zone and coupon tables
// plus the configured negative-total policy.
var StaticModule = fx.Module("static",
	fx.Provide(
		staticdata.DefaultZones,
		staticdata.DefaultCoupons,
		NewNegativeTotalPolicy,
	),
)

func NewNegativeTotalPolicy(cfg config.Config) (pricing.NegativeTotalPolicy, error) {
	return pricing.ParsePolicy(cfg.Checkout.NegativeTotalPolicy)
}
