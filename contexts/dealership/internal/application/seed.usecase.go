package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
)

var ErrSeedFailed = errors.New("seed failed")

const seedExecuted = "Seed executed"

type (
	SeedCommand  struct{}
	SeedResponse struct {
		Message string `json:"message"`
	}
)

// NewSeedRequestHandler replaces all brands and cars with the dealership fixtures.
// Both are replaced or none: if the cars can not be filled, the previous brands are put back.
func NewSeedRequestHandler(
	brands dealership.BrandRepository,
	cars dealership.CarRepository,
	now func() time.Time,
) app.Request[SeedCommand, SeedResponse] {
	if now == nil {
		now = time.Now
	}

	return &seedRequestHandler{brands: brands, cars: cars, now: now}
}

type seedRequestHandler struct {
	brands dealership.BrandRepository
	cars   dealership.CarRepository
	now    func() time.Time
}

func (h *seedRequestHandler) H(ctx context.Context, _ SeedCommand) (SeedResponse, error) {
	oldBrands, err := h.brands.FindAll(ctx)
	if err != nil {
		return SeedResponse{}, fmt.Errorf("%w: brands: %w", ErrSeedFailed, err)
	}

	if err := h.brands.Fill(ctx, dealership.BrandSeed(h.now())); err != nil {
		return SeedResponse{}, fmt.Errorf("%w: brands: %w", ErrSeedFailed, err)
	}

	if err := h.cars.Fill(ctx, dealership.CarSeed()); err != nil {
		if rbErr := h.brands.Fill(ctx, oldBrands); rbErr != nil {
			err = errors.Join(err, fmt.Errorf("could not restore brands: %w", rbErr))
		}

		return SeedResponse{}, fmt.Errorf("%w: cars: %w", ErrSeedFailed, err)
	}

	return SeedResponse{Message: seedExecuted}, nil
}
