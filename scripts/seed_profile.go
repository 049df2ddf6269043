package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// Usage: go run ./scripts/seed_profile.go profile.json
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <profile.json>", os.Args[0])
	}
	fmt.Println("adding profile into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	body, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("cannot read profile file: %v", err)
	}

	ctx := context.Background()
	db := persistence.NewMongoDB(ctx, cfg, logger.NewNopLogger())
	defer db.Disconnect(ctx)

	uc := profileUC.NewProfileUseCase(persistence.NewMongoProfileRepo(db), service.NewNopPublisher(), logger.NewNopLogger())

	existing, err := uc.GetFirst(ctx)
	switch {
	case err == nil:
		fmt.Printf("profile '%s' already exists (%s), nothing to do\n", existing.Name, existing.ID.Hex())
		return
	case !errors.Is(err, apperror.ErrNotFound):
		log.Fatalf("cannot check existing profile: %s", apperror.Message(err))
	}

	p, err := uc.Create(ctx, body)
	if err != nil {
		log.Fatalf("cannot add profile: %s", apperror.Message(err))
	}
	fmt.Printf("added profile '%s' successfully! id=%s\n", p.Name, p.ID.Hex())
}
