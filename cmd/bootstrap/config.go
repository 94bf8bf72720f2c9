package bootstrap

import (
	"vicqa-tradehub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PaystackConfig { return cfg.Paystack },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
	),
)
