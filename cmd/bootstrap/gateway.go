package bootstrap

import (
	"poolside/internal/infra/gateway"
	"poolside/internal/infra/notify"
	"poolside/internal/infra/repository"
	"poolside/internal/pkg/config"
	"poolside/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewMessageEmitter,
			fx.As(new(commands.NotificationEmitter)),
		),
	),
)

func NewStripeGateway(cfg config.Config) *gateway.StripeGateway {
	return gateway.NewStripeGateway(cfg.Stripe)
}

func NewMessageEmitter(messages *repository.MessageRepository, cfg config.Config) *notify.MessageEmitter {
	return notify.NewMessageEmitter(messages, cfg.Stripe)
}
