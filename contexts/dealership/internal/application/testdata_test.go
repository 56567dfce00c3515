package application_test

import (
	"context"
	"errors"
	"time"

	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
	"github.com/go-arrower/catalog/repository"
)

var errStoreFailed = errors.New("store failed")

var (
	ctx       = context.Background()
	fixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock     = func() time.Time { return fixedTime }
)

func newBrandRepository() *repository.MemoryRepository[dealership.Brand, string] {
	return repository.NewMemoryRepository[dealership.Brand, string](repository.WithClock(clock))
}

func newCarRepository() *repository.MemoryRepository[dealership.Car, string] {
	return repository.NewMemoryRepository[dealership.Car, string]()
}

func ptr[T any](v T) *T {
	return &v
}

// failingStore loads nothing and refuses to keep any data.
type failingStore struct{}

func (failingStore) Store(_ string, _ any) error { return errStoreFailed }
func (failingStore) Load(_ string, _ any) error { return nil }
