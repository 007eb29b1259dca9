package components

import (
	"gymgain/internal/infra/wger"
	"gymgain/internal/pkg/clock"
	"gymgain/internal/pkg/config"
	"gymgain/internal/usecase/commands"
	"gymgain/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewWgerClient,
		fx.As(new(queries.ExerciseSearcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoutineCommands,
		commands.NewWorkoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		queries.NewRoutineQueries,
		queries.NewWorkoutQueries,
	),
)

func NewWgerClient(cfg config.Config) *wger.Client {
	return wger.NewClient(cfg.Wger)
}
