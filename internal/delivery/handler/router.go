package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/santiago-morfe/TaskGeniusApi/internal/application/interfaces"
)

type RouterConfig struct {
	UserService   interfaces.UserService
	TaskService   interfaces.TaskService
	GeniusService interfaces.GeniusService
	Tokens        TokenParser
	// GeniusLimiter throttles /api/genius per caller. Nil disables it.
	GeniusLimiter middleware.RateLimiterStore
	CORSOrigins   []string
	Log           *slog.Logger
}

func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Log)

	e.Use(requestID())
	e.Use(requestLogger(cfg.Log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, headerIdempotencyKey},
	}))

	e.GET("/health", func(c echo.Context) error {
		return sendJSONResponse(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	users := NewUserHandler(cfg.UserService)
	tasks := NewTaskHandler(cfg.TaskService)
	genius := NewGeniusHandler(cfg.GeniusService)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", users.Register)
	auth.POST("/login", users.Login)

	requireAuth := RequireAuth(cfg.Tokens)

	me := api.Group("/users/me", requireAuth)
	me.GET("", users.GetProfile)
	me.PUT("", users.UpdateProfile)
	me.DELETE("", users.DeleteAccount)

	task := api.Group("/task", requireAuth)
	task.GET("", tasks.List)
	task.POST("", tasks.Create)
	task.GET("/:id", tasks.Get)
	task.PUT("/:id", tasks.Update)
	task.DELETE("/:id", tasks.Delete)

	geniusMiddleware := []echo.MiddlewareFunc{requireAuth}
	if cfg.GeniusLimiter != nil {
		geniusMiddleware = append(geniusMiddleware, RateLimitByCaller(cfg.GeniusLimiter))
	}
	assist := api.Group("/genius", geniusMiddleware...)
	assist.GET("/advice", genius.Advice)
	assist.GET("/titleSuggestion", genius.TitleSuggestion)
	assist.GET("/descriptionFormatting", genius.DescriptionFormatting)
	assist.GET("/taskAdvice", genius.TaskAdvice)
	assist.GET("/task/:id/advice", genius.OwnedTaskAdvice)
	assist.POST("/question", genius.Question)

	return e
}
