package main

import (
	"log"

	"election-service/configs"
	"election-service/internal/adapters/database"
)

func main() {
	cfg := configs.Load()

	db, err := database.NewPostgresConnection(
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed")
}
