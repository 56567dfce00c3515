package repository_test

import (
	"context"
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/catalog/repository"
)

var errStoreFailed = errors.New("store failed")

var (
	ctx = context.Background()

	// fixedTime is used as the clock of repositories under test.
	fixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
)

type (
	EntityID string
	Entity   struct {
		ID        EntityID
		Name      string
		Note      string
		CreatedAt int64
		UpdatedAt int64
	}

	// EntityPatch can not touch the ID, as it has no such field.
	EntityPatch struct {
		Name *string
		Note *string
	}
)

func (p EntityPatch) Apply(e Entity) Entity {
	if p.Name != nil {
		e.Name = *p.Name
	}

	if p.Note != nil {
		e.Note = *p.Note
	}

	return e
}

type EntityWithoutID struct {
	Name string
}

func randomEntity() Entity {
	return Entity{
		ID:   EntityID(repository.NewID()),
		Name: gofakeit.Name(),
		Note: gofakeit.Sentence(3),
	}
}

func newEntityRepository(opts ...repository.Option) *repository.MemoryRepository[Entity, EntityID] {
	opts = append([]repository.Option{repository.WithClock(func() time.Time { return fixedTime })}, opts...)

	return repository.NewMemoryRepository[Entity, EntityID](opts...)
}

func ptr[T any](v T) *T {
	return &v
}

// failingStore loads fine but fails every Store call.
type failingStore struct{}

func (s failingStore) Store(_ string, _ any) error { return errStoreFailed }
func (s failingStore) Load(_ string, _ any) error  { return nil }

// loadFailingStore fails to load.
type loadFailingStore struct{}

func (s loadFailingStore) Store(_ string, _ any) error { return nil }
func (s loadFailingStore) Load(_ string, _ any) error  { return errStoreFailed }
