package service

import (
	"context"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"

	"rushmore-populate/internal/common/logger"
	"rushmore-populate/internal/config"
	"rushmore-populate/internal/seeder/repository"
)

type SeederServiceInterface interface {
	SeedStores(ctx context.Context) error
	SeedIngredients(ctx context.Context) error
	SeedMenuItems(ctx context.Context) error
	MapItemIngredients(ctx context.Context) error
	SeedCustomers(ctx context.Context) error
	CreateOrders(ctx context.Context) error
}

// SeederService generates the fake dataset. It owns two explicitly
// seeded random sources for the lifetime of the run: rng for choices,
// quantities, prices and assignment draws, and faker for identity,
// address and timestamp data. Both are threaded through calls rather
// than taken from package globals, so a fixed seed reproduces the run.
type SeederService struct {
	repo  repository.SeederRepositoryInterface
	cfg   config.SeederConfig
	lg    *logger.Logger
	rng   *rand.Rand
	faker *gofakeit.Faker
}

var _ SeederServiceInterface = (*SeederService)(nil)

func New(repo repository.SeederRepositoryInterface, cfg config.SeederConfig, lg *logger.Logger) *SeederService {
	return &SeederService{
		repo:  repo,
		cfg:   cfg,
		lg:    lg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		faker: gofakeit.New(uint64(cfg.Seed)),
	}
}
