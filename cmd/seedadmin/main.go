// Command seedadmin creates the initial admin user.
// Usage: go run ./cmd/seedadmin <email> <password> [name]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"gstbooks/internal/config"
	"gstbooks/internal/domain"
	"gstbooks/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println("Usage: seedadmin <email> <password> [name]")
		os.Exit(1)
	}
	email := os.Args[1]
	password := os.Args[2]
	name := "Administrator"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userRepo := postgres.NewUserRepo(db)
	user := &domain.User{
		Email:        email,
		FullName:     name,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("admin user %s created with id %s", user.Email, user.ID)
	return nil
}
