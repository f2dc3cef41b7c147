// Command seed populates the database with sample users and projects.
// Useful for local development and demos.
package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authentity "nexus_backend/internal/feature/auth/domain/entity"
	projectentity "nexus_backend/internal/feature/projects/domain/entity"
	"nexus_backend/internal/platform/config"
	"nexus_backend/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := db.ConnectWithRetry(cfg.DatabaseURL, 30*time.Second, db.Open)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	alice := seedUser(conn, "alice@example.com", "password123")
	bob := seedUser(conn, "bob@example.com", "password456")

	projects := []projectentity.Project{
		{
			Name:        "Aetha - Pan-African Cloud",
			Description: ptr("Building a distributed cloud infrastructure across Africa"),
			Completion:  23,
			OwnerID:     &alice.ID,
		},
		{
			Name:        "Aether Vision - AI Drone System",
			Description: ptr("Advanced aerial surveillance and mapping using AI"),
			Completion:  42,
			OwnerID:     &alice.ID,
		},
		{
			Name:        "Nexus Edge - IoT Platform",
			Description: ptr("Edge computing platform for IoT and real-time analytics"),
			Completion:  67,
			OwnerID:     &bob.ID,
		},
		{
			Name:        "Quantum Bridge - Secure Comms",
			Description: ptr("Post-quantum cryptography communication layer"),
			Completion:  15,
			OwnerID:     &bob.ID,
		},
		{
			Name:        "DataStream - Analytics Engine",
			Description: ptr("Real-time data processing and visualization"),
			Completion:  89,
		},
	}
	for i := range projects {
		if err := conn.Create(&projects[i]).Error; err != nil {
			log.Fatalf("seed project %q: %v", projects[i].Name, err)
		}
	}

	log.Printf("Seeded 2 users and %d sample projects", len(projects))
}

// seedUser creates the user, or returns the existing row when the email is
// already registered so the command can be rerun.
func seedUser(conn *gorm.DB, email, password string) *authentity.User {
	var existing authentity.User
	if err := conn.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password for %s: %v", email, err)
	}
	u := &authentity.User{
		Email:          email,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := conn.Create(u).Error; err != nil {
		log.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func ptr(s string) *string { return &s }
