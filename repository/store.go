package repository

import "errors"

var (
	ErrStore = errors.New("could not store repository data")
	ErrLoad  = errors.New("could not load repository data")
)

// Store is an interface to access the data of a MemoryRepository as a whole,
// so a snapshot of it can be kept outside the process.
//
// The catalog uses JSONStore, if repository.data_dir is configured:
// every mutation of brands, cars or pokemon rewrites Brand.json, Car.json or Pokemon.json,
// and a restart or a `catalog seed` run loads them again.
// A failing Store rolls the mutation back, see WithStore.
type Store interface {
	Store(fileName string, data any) error
	Load(fileName string, data any) error
}

// NoopStore keeps nothing. It is the default of every MemoryRepository,
// so the collections live in memory only.
var NoopStore Store = &noopStore{} //nolint:gochecknoglobals // pattern from std lib slog.DiscardHandler

type noopStore struct{}

func (n noopStore) Store(_ string, _ any) error {
	return nil
}

func (n noopStore) Load(_ string, _ any) error {
	return nil
}
