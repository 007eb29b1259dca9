package components

import (
	"gymgain/internal/infra/db"
	"gymgain/internal/infra/readstore"
	"gymgain/internal/infra/uow"
	"gymgain/internal/usecase/queries"
	"gymgain/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRoutineReadStore,
			fx.As(new(queries.RoutineReadStore)),
		),
		fx.Annotate(
			readstore.NewWorkoutReadStore,
			fx.As(new(queries.WorkoutReadStore)),
		),
	),
)

// NewDBTX binds the read stores to the pool; inside a transaction the unit of
// work rebinds them to the transaction's connection.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
