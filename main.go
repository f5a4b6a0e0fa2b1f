package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"cakeshop-api/internal/config"
	"cakeshop-api/internal/db"
	"cakeshop-api/internal/logger"
	"cakeshop-api/internal/router"
	"cakeshop-api/internal/services"
	"cakeshop-api/internal/store/mongodb"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger()
	log.Info().Msg("Starting cake shop backend")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, database, err := db.Connect(connectCtx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to the store")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from the store")
		}
	}()
	log.Info().Str("database", cfg.DBName).Msg("Connected to the store")

	authService := services.NewAuthService(
		cfg.JWTSecret,
		services.TokenTTL,
		mongodb.NewAdminStore(database),
		cfg.AdminUsername,
		cfg.AdminPassword,
		log,
	)

	r := router.SetupRouter(router.Deps{
		Products:       mongodb.NewProductStore(database),
		Orders:         mongodb.NewOrderStore(database),
		Settings:       mongodb.NewSettingsStore(database),
		AuthService:    authService,
		AllowedOrigins: cfg.AllowedOrigins,
	}, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Msgf("Server listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Server stopped")
}
