package main

import (
	"context"
	"log"

	"election-service/configs"
	"election-service/internal/adapters/database"
	"election-service/internal/ports/models"
	"election-service/internal/server/repository"
	"election-service/internal/server/service"
)

// Seeds a demo election: a handful of voter accounts and two contested
// positions.
func main() {
	cfg := configs.Load()
	ctx := context.Background()

	db, err := database.NewPostgresConnection(
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	studentRepo := repository.NewStudentRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)

	students := []struct {
		id       string
		password string
		role     string
	}{
		{"TCH-0001", "changeme1", models.RoleTeacher},
		{"STU-0001", "changeme1", models.RoleStudent},
		{"STU-0002", "changeme1", models.RoleStudent},
		{"STU-0003", "changeme1", models.RoleStudent},
	}
	for _, st := range students {
		hashed, err := service.HashPassword(st.password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		err = studentRepo.Create(ctx, &models.Student{
			StudentID: st.id,
			Password:  hashed,
			Role:      st.role,
		})
		if err != nil {
			log.Printf("Skipping student %s: %v", st.id, err)
		}
	}

	candidates := []models.Candidate{
		{Name: "Ama Mensah", Position: "Head Girl"},
		{Name: "Efua Owusu", Position: "Head Girl"},
		{Name: "Kofi Boateng", Position: "Head Boy"},
		{Name: "Yaw Darko", Position: "Head Boy"},
	}
	for i := range candidates {
		if err := candidateRepo.Create(ctx, &candidates[i]); err != nil {
			log.Printf("Skipping candidate %s: %v", candidates[i].Name, err)
		}
	}

	log.Println("Seed data created")
}
