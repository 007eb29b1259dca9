package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gymgain/internal/handler/api"
	"gymgain/internal/handler/middleware"
	"gymgain/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	scheduleHandler *api.ScheduleHandler,
	pageHandler *api.PageHandler,
	routineHandler *api.RoutineHandler,
	workoutHandler *api.WorkoutHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, scheduleHandler, pageHandler, routineHandler, workoutHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	scheduleHandler *api.ScheduleHandler,
	pageHandler *api.PageHandler,
	routineHandler *api.RoutineHandler,
	workoutHandler *api.WorkoutHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	withSession := engine.Group("")
	withSession.Use(sessionMiddleware.OptionalSession())
	addRoutes(withSession, []route{
		{Method: http.MethodGet, Path: "/", Handler: scheduleHandler.Index},
		{Method: http.MethodGet, Path: "/users/logout", Handler: authHandler.Logout},
	})

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
		})
	}

	authed := engine.Group("")
	authed.Use(sessionMiddleware.RequireSession())
	{
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: pageHandler.Dashboard},
			{Method: http.MethodGet, Path: "/social", Handler: pageHandler.Social},
			{Method: http.MethodPost, Path: "/schedule/book", Handler: scheduleHandler.Book},
			{Method: http.MethodPost, Path: "/schedule/cancel", Handler: scheduleHandler.Cancel},
		})

		routines := authed.Group("/routines")
		{
			addRoutes(routines, []route{
				{Method: http.MethodGet, Path: "", Handler: routineHandler.List},
				{Method: http.MethodPost, Path: "", Handler: routineHandler.Save},
				{Method: http.MethodGet, Path: "/new", Handler: routineHandler.New},
				{Method: http.MethodPost, Path: "/search", Handler: routineHandler.Search},
				{Method: http.MethodPost, Path: "/add-exercise", Handler: routineHandler.AddExercise},
				{Method: http.MethodPost, Path: "/remove-exercise", Handler: routineHandler.RemoveExercise},
				{Method: http.MethodGet, Path: "/cancel-creation", Handler: routineHandler.CancelCreation},
			})
		}

		workouts := authed.Group("/workouts")
		{
			addRoutes(workouts, []route{
				{Method: http.MethodGet, Path: "", Handler: workoutHandler.List},
				{Method: http.MethodPost, Path: "/add", Handler: workoutHandler.Add},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
