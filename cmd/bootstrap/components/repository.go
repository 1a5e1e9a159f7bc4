package components

import (
	"poolside/internal/infra/readstore"
	repo_impl "poolside/internal/infra/repository"
	"poolside/internal/usecase/commands"
	"poolside/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserStore)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationStore)),
		),
		fx.Annotate(
			repo_impl.NewPoolRepository,
			fx.As(new(commands.PoolStore)),
			fx.As(new(queries.PoolOwnerResolver)),
		),
		fx.Annotate(
			repo_impl.NewAvailabilityRequestRepository,
			fx.As(new(commands.RequestStore)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentStore)),
		),
		repo_impl.NewMessageRepository,
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPoolReadStore,
			fx.As(new(queries.PoolReadStore)),
		),
	),
)
