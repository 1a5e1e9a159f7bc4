package components

import (
	"poolside/internal/pkg/clock"
	"poolside/internal/pkg/config"
	"poolside/internal/pkg/dispatch"
	"poolside/internal/usecase"
	"poolside/internal/usecase/commands"
	"poolside/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	dispatch.NewGoDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPoolCommands,
		commands.NewAvailabilityReconciler,
		commands.NewReservationCommands,
		commands.NewAvailabilityCommands,
		NewPaymentSweeper,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewPoolQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// The sweeper and the payment commands both reuse ReservationCommands as the
// transition path; wrapper constructors feed them the configured deadline.

func NewPaymentSweeper(
	cfg config.Config,
	reservations commands.ReservationStore,
	payments commands.PaymentStore,
	reservationCommands commands.ReservationCommands,
	clk clock.Clock,
) *commands.PaymentSweeper {
	return commands.NewPaymentSweeper(reservations, payments, reservationCommands, clk, cfg.Sweep.PaymentDeadline)
}

func NewPaymentCommands(
	cfg config.Config,
	reservations commands.ReservationStore,
	payments commands.PaymentStore,
	gateway commands.PaymentGateway,
	reservationCommands commands.ReservationCommands,
	clk clock.Clock,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(reservations, payments, gateway, reservationCommands, clk, cfg.Sweep.PaymentDeadline)
}
