package main

import (
	"context"
	"log"

	"advocate-backend/advisor"
	"advocate-backend/config"
	"advocate-backend/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.ApplySchema(ctx, pool); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("✓ Schema is up to date")

	var adv *advisor.Advisor
	if cfg.ReferenceFile != "" {
		adv, err = advisor.LoadReferenceFile(cfg.ReferenceFile)
	} else {
		adv, err = advisor.NewDefault()
	}
	if err != nil {
		log.Fatalf("Invalid reference data: %v", err)
	}

	inserted, err := repository.NewCrimeRepository(pool).Seed(ctx, adv.Store().Crimes())
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("✓ Seeded crimes dataset (%d new, %d total in reference)", inserted, adv.Store().Len())
}
