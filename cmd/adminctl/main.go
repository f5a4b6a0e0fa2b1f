// Provisions or resets the administrator identity: hashes the supplied
// password with bcrypt and upserts the record keyed by username. Running it
// against an existing username is a password reset.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cakeshop-api/internal/config"
	"cakeshop-api/internal/db"
	"cakeshop-api/internal/logger"
	"cakeshop-api/internal/models"
	"cakeshop-api/internal/store/mongodb"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	log := logger.InitLogger()

	if *password == "" {
		log.Fatal().Msg("-password is required")
	}

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, database, err := db.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to the store")
	}
	defer client.Disconnect(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not hash password")
	}

	admins := mongodb.NewAdminStore(database)
	err = admins.Upsert(ctx, &models.Admin{
		Username:       *username,
		HashedPassword: string(hash),
		Role:           string(models.RoleAdmin),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Could not upsert admin identity")
	}

	log.Info().Str("username", *username).Msg("Admin identity in place")
}
