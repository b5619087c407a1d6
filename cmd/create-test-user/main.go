package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"advocate-backend/config"
	"advocate-backend/models"
	"advocate-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	users := repository.NewUserRepository(pool)

	// Create a test user
	email := envOr("TEST_USER_EMAIL", "test@example.com")
	password := envOr("TEST_USER_PASSWORD", "testpassword123")
	name := "Test User"

	// Check if user already exists
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("User with email %s already exists (ID: %s)", email, existing.ID)
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Failed to look up user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("✅ Test user created successfully!\n")
	fmt.Printf("   ID: %s\n", user.ID)
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Password: %s\n", password)
	fmt.Printf("   Name: %s\n", name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
