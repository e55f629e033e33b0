package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/courseorders/internal/config"
	"github.com/example/courseorders/internal/database"
	"github.com/example/courseorders/internal/logger"
	"github.com/example/courseorders/internal/routes"
	"github.com/example/courseorders/internal/session"
)

const serviceName = "course-orders"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(serviceName, "info")
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(serviceName, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	var revoker session.Revoker = session.NoopRevoker{}
	if cfg.RedisAddr != "" {
		redisRevoker := session.NewRedisRevoker(cfg.RedisAddr)
		defer redisRevoker.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisRevoker.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed, revocation checks will error until it is reachable")
		}
		cancel()
		revoker = redisRevoker
	} else {
		log.Info().Msg("REDIS_ADDR not set, logout only clears the session cookie")
	}

	sessions := session.NewProvider(session.Options{
		Secret:       cfg.JWTSecret,
		TTL:          cfg.TokenTTL,
		CookieName:   cfg.SessionCookieName,
		CookieSecure: cfg.SessionCookieSecure,
	}, revoker)

	app := routes.NewApp(log)
	routes.Register(app, db, cfg, sessions)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.AppPort).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("fiber.Listen error")
	}
}
