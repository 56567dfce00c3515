package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStorage  = errors.New("storage error")
	ErrNotFound = errors.New("not found")
)

// Patch changes an existing entity during an Update.
// Apply receives the stored entity and returns the merged result.
// Whatever Apply does to the id field is discarded, the stored id always wins.
type Patch[E any] interface {
	Apply(entity E) E
}

// PatchFunc is an adapter to use an ordinary function as a Patch.
type PatchFunc[E any] func(entity E) E

func (f PatchFunc[E]) Apply(entity E) E { //nolint:ireturn // valid use of generics
	return f(entity)
}

// Repository is a general purpose interface documenting which methods are available by the generic MemoryRepository.
// ID is the primary key and needs to be of one of the underlying types.
// If your repository needs additional methods, you can extend your own repository easily to tune it to your use case.
// See the examples in the test files.
type Repository[E any, ID id] interface {
	NextID(ctx context.Context) (ID, error)

	Create(ctx context.Context, entity E) (E, error)
	Read(ctx context.Context, id ID) (E, error)
	Update(ctx context.Context, id ID, patch Patch[E]) (E, error)
	Delete(ctx context.Context, id ID) error

	All(ctx context.Context) ([]E, error)
	FindAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, id ID) (E, error)
	Exists(ctx context.Context, id ID) (bool, error)
	Count(ctx context.Context) (int, error)

	// Fill replaces the whole collection with trusted seed data.
	Fill(ctx context.Context, entities []E) error
	// Import replaces the whole collection with entities created like in Create.
	Import(ctx context.Context, entities []E) ([]E, error)
}

// id are the types allowed as a primary key used in the generic Repository.
type id interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// NewID returns a new, random identifier in the canonical uuid form.
func NewID() string {
	return uuid.New().String()
}

// Option takes in a repository configuration to set different optional properties.
type Option func(config *repoConfig)

type repoConfig struct {
	idFieldName        string
	createdAtFieldName string
	updatedAtFieldName string

	now func() time.Time

	store    Store
	filename string
}

// WithIDField set's the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option {
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

// WithCreatedAtField sets the name of the int64 field that receives the
// creation time in epoch milliseconds. Default is "CreatedAt".
// Entities without such a field are not timestamped.
func WithCreatedAtField(name string) Option {
	return func(config *repoConfig) {
		config.createdAtFieldName = name
	}
}

// WithUpdatedAtField sets the name of the int64 field that receives the
// time of the last update in epoch milliseconds. Default is "UpdatedAt".
func WithUpdatedAtField(name string) Option {
	return func(config *repoConfig) {
		config.updatedAtFieldName = name
	}
}

// WithClock replaces time.Now as the source of the timestamps.
func WithClock(now func() time.Time) Option {
	return func(config *repoConfig) {
		if now != nil {
			config.now = now
		}
	}
}

var (
	errCreateFailed = fmt.Errorf("%w: create failed", ErrStorage)
	errUpdateFailed = fmt.Errorf("%w: update failed", ErrStorage)
	errDeleteFailed = fmt.Errorf("%w: delete failed", ErrStorage)
	errFillFailed   = fmt.Errorf("%w: fill failed", ErrStorage)
)
