package components

import (
	"gymgain/internal/handler"
	"gymgain/internal/handler/api"
	"gymgain/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewScheduleHandler,
		api.NewPageHandler,
		api.NewRoutineHandler,
		api.NewWorkoutHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
