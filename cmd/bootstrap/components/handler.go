package components

import (
	"poolside/internal/handler"
	"poolside/internal/handler/api"
	"poolside/internal/handler/middleware"
	"poolside/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPoolHandler,
		api.NewReservationHandler,
		api.NewAvailabilityHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		api.NewOwnerHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)

func NewHandlers(
	auth *api.AuthHandler,
	pool *api.PoolHandler,
	reservation *api.ReservationHandler,
	availability *api.AvailabilityHandler,
	payment *api.PaymentHandler,
	webhook *api.WebhookHandler,
	owner *api.OwnerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Pool:         pool,
		Reservation:  reservation,
		Availability: availability,
		Payment:      payment,
		Webhook:      webhook,
		Owner:        owner,
	}
}
