package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/santiago-morfe/TaskGeniusApi/internal/application/services"
	"github.com/santiago-morfe/TaskGeniusApi/internal/delivery/handler"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/db/postgres"
	"github.com/santiago-morfe/TaskGeniusApi/internal/infrastructure/genius"
	"github.com/spf13/cobra"
)

const rateLimiterIdleTTL = 10 * time.Minute

func newServeCommand(opts *rootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			env, err := setup(ctx, opts)
			if err != nil {
				return err
			}
			defer env.close()

			if migrate {
				if err := postgres.Migrate(env.db.WithContext(ctx)); err != nil {
					return err
				}
			}
			return serve(ctx, env)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run the schema migration before serving")
	return cmd
}

func serve(ctx context.Context, env *environment) error {
	cfg := env.cfg

	redisService := infrastructure.NewRedisService(ctx, cfg.Redis, env.log)
	defer redisService.Close()

	userRepo := postgres.NewUserRepository(env.db)
	taskRepo := postgres.NewTaskRepository(env.db)
	jwtService := infrastructure.NewJWTService(cfg.JWT)

	gateway := genius.NewClient(cfg.Gemini, &http.Client{Timeout: cfg.Gemini.Timeout}, env.log)
	if cfg.Gemini.APIKey == "" {
		env.log.Warn("GEMINI_API_KEY is not set, assistant requests will fail")
	}

	router := handler.NewRouter(handler.RouterConfig{
		UserService: services.NewUserService(
			userRepo,
			jwtService,
			redisService,
			infrastructure.NewEmailService(cfg.Email, env.log),
			env.log,
		),
		TaskService:   services.NewTaskService(taskRepo, postgres.NewIdempotencyRepository(env.db), env.log),
		GeniusService: services.NewGeniusService(taskRepo, gateway),
		Tokens:        jwtService,
		GeniusLimiter: infrastructure.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, rateLimiterIdleTTL),
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		Log:           env.log,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		env.log.Info("server listening", "addr", cfg.HTTP.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	env.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
