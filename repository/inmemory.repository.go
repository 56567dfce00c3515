package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"sync"
	"time"
)

// WithStore sets a Store used to snapshot the Repository.
// ONLY applies to the in memory implementations.
//
// There are no transactions: if the store fails, the change is rolled back
// in memory and the error is returned.
func WithStore(store Store) Option {
	return func(config *repoConfig) {
		config.store = store
	}
}

// WithStoreFilename overwrites the file name a Store should use to persist this Repository.
// ONLY applies to the in memory implementations.
func WithStoreFilename(name string) Option {
	return func(config *repoConfig) {
		config.filename = name
	}
}

// NewMemoryRepository returns an implementation of Repository for the given entity E.
// It is expected that E has a field called `ID`, that is used as the primary key and can
// be overwritten by WithIDField.
// If your repository needs additional methods, you can embed this repo into our own implementation to extend
// your own repository easily to your use case. See the examples in the test files.
//
// The collection keeps the insertion order of its entities.
// Without a Store the contents do not survive a restart of the process.
func NewMemoryRepository[E any, ID id](opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex:        &sync.Mutex{},
		Data:         []E{},
		currentIntID: *new(ID),
		repoConfig: repoConfig{
			idFieldName:        "ID",
			createdAtFieldName: "CreatedAt",
			updatedAtFieldName: "UpdatedAt",
			now:                time.Now,
			store:              NoopStore,
			filename:           defaultFileName(new(E)),
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	err := repo.store.Load(repo.filename, &repo.Data)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		panic("could not load data for memory repository from store: " + err.Error())
	}

	if repo.Data == nil {
		repo.Data = []E{}
	}

	return repo
}

// MemoryRepository implements Repository in a generic way.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's ordered collection. It is exposed in case you're extending the repository.
	// PREVENT using and accessing Data it directly, go through the repository methods.
	// If you write to Data, USE the Mutex to lock first.
	Data         []E
	currentIntID ID

	repoConfig
}

var _ Repository[struct{ ID string }, string] = (*MemoryRepository[struct{ ID string }, string])(nil)

const panicIDNotSupported = "type of ID is not supported: "

func defaultFileName(entity any) string {
	return reflect.TypeOf(entity).Elem().Name() + ".json"
}

func (repo *MemoryRepository[E, ID]) idField(val reflect.Value) reflect.Value {
	idField := val.FieldByName(repo.idFieldName)
	if !idField.IsValid() {
		panic("entity does not have the field with name: " + repo.idFieldName)
	}

	return idField
}

func (repo *MemoryRepository[E, ID]) getID(entity E) ID { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	idField := repo.idField(reflect.ValueOf(entity))

	var id ID

	switch idField.Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(idField.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		reflect.ValueOf(&id).Elem().SetInt(idField.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		reflect.ValueOf(&id).Elem().SetUint(idField.Uint())
	default:
		panic(panicIDNotSupported + idField.Kind().String())
	}

	return id
}

// setID forces id into the entity's id field, whatever value it had before.
func (repo *MemoryRepository[E, ID]) setID(entity *E, id ID) {
	idField := repo.idField(reflect.ValueOf(entity).Elem())
	idVal := reflect.ValueOf(id)

	switch idField.Kind() {
	case reflect.String:
		idField.SetString(idVal.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		idField.SetInt(idVal.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		idField.SetUint(idVal.Uint())
	default:
		panic(panicIDNotSupported + idField.Kind().String())
	}
}

// stamp writes the current time in epoch milliseconds into the named field.
// Entities without that field are left as they are.
func (repo *MemoryRepository[E, ID]) stamp(entity *E, fieldName string) {
	if fieldName == "" {
		return
	}

	field := reflect.ValueOf(entity).Elem().FieldByName(fieldName)
	if !field.IsValid() {
		return
	}

	if field.Kind() != reflect.Int64 {
		panic("timestamp field " + fieldName + " must be of kind int64, is: " + field.Kind().String())
	}

	field.SetInt(repo.now().UnixMilli())
}

// index returns the position of the entity with the given id or -1.
// The caller MUST hold the lock.
func (repo *MemoryRepository[E, ID]) index(id ID) int {
	return slices.IndexFunc(repo.Data, func(e E) bool {
		return repo.getID(e) == id
	})
}

func notFound[ID id](id ID) error {
	return fmt.Errorf("%w: entity with id '%v'", ErrNotFound, id)
}

// NextID returns a new ID. It can be of the underlying type of string or integer.
// String IDs are random uuids, integer IDs are counted up per repository.
func (repo *MemoryRepository[E, ID]) NextID(_ context.Context) (ID, error) { //nolint:ireturn,lll // fp, as it is not recognised even with "generic" setting
	var id ID

	switch reflect.TypeOf(id).Kind() {
	case reflect.String:
		reflect.ValueOf(&id).Elem().SetString(NewID())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		repo.Mutex.Lock()
		defer repo.Mutex.Unlock()

		// the counter is stored in the repo, but the generic does not know which type it is,
		// so that is why reflection is used.
		newID := reflect.ValueOf(&repo.currentIntID).Elem().Int() + 1
		reflect.ValueOf(&repo.currentIntID).Elem().SetInt(newID)

		reflect.ValueOf(&id).Elem().SetInt(newID)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		repo.Mutex.Lock()
		defer repo.Mutex.Unlock()

		newID := reflect.ValueOf(&repo.currentIntID).Elem().Uint() + 1
		reflect.ValueOf(&repo.currentIntID).Elem().SetUint(newID)

		reflect.ValueOf(&id).Elem().SetUint(newID)
	default:
		panic(panicIDNotSupported + reflect.TypeOf(id).Kind().String())
	}

	return id, nil
}

// Create mints a new id for the entity, sets its creation time and appends it to the collection.
// Any id already present in entity is overwritten.
func (repo *MemoryRepository[E, ID]) Create(ctx context.Context, entity E) (E, error) { //nolint:ireturn,lll // valid use of generics
	id, err := repo.NextID(ctx)
	if err != nil {
		return *new(E), fmt.Errorf("%w: %w", errCreateFailed, err)
	}

	repo.setID(&entity, id)
	repo.stamp(&entity, repo.createdAtFieldName)

	repo.Lock()
	defer repo.Unlock()

	repo.Data = append(repo.Data, entity)

	err = repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = repo.Data[:len(repo.Data)-1]
		return *new(E), fmt.Errorf("%w: %w", errCreateFailed, err)
	}

	return entity, nil
}

func (repo *MemoryRepository[E, ID]) Read(ctx context.Context, id ID) (E, error) { //nolint:ireturn,lll // valid use of generics
	return repo.FindByID(ctx, id)
}

// Update merges patch into the stored entity with the given id.
// The precedence is: stored fields, then the fields set by patch, then the stored id.
// The update time is set on every successful call, also if patch is nil.
func (repo *MemoryRepository[E, ID]) Update(_ context.Context, id ID, patch Patch[E]) (E, error) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	pos := repo.index(id)
	if pos < 0 {
		return *new(E), notFound(id)
	}

	oldEntity := repo.Data[pos]

	updated := oldEntity
	if patch != nil {
		updated = patch.Apply(oldEntity)
	}

	repo.setID(&updated, id)
	repo.stamp(&updated, repo.updatedAtFieldName)

	repo.Data[pos] = updated

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data[pos] = oldEntity
		return *new(E), fmt.Errorf("%w: %w", errUpdateFailed, err)
	}

	return updated, nil
}

// Delete removes the entity with the given id.
func (repo *MemoryRepository[E, ID]) Delete(_ context.Context, id ID) error {
	repo.Lock()
	defer repo.Unlock()

	pos := repo.index(id)
	if pos < 0 {
		return notFound(id)
	}

	oldData := repo.Data
	repo.Data = slices.Delete(slices.Clone(repo.Data), pos, pos+1)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = oldData
		return fmt.Errorf("%w: %w", errDeleteFailed, err)
	}

	return nil
}

func (repo *MemoryRepository[E, ID]) All(ctx context.Context) ([]E, error) {
	return repo.FindAll(ctx)
}

// FindAll returns a snapshot of the collection in insertion order.
func (repo *MemoryRepository[E, ID]) FindAll(_ context.Context) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	result := make([]E, len(repo.Data))
	copy(result, repo.Data)

	return result, nil
}

func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, error) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	pos := repo.index(id)
	if pos < 0 {
		return *new(E), notFound(id)
	}

	return repo.Data[pos], nil
}

func (repo *MemoryRepository[E, ID]) Exists(_ context.Context, id ID) (bool, error) {
	repo.Lock()
	defer repo.Unlock()

	return repo.index(id) >= 0, nil
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data), nil
}

// Fill discards the current collection and replaces it with entities, in their order.
// The entities are trusted: ids are taken as they are and nothing is validated.
func (repo *MemoryRepository[E, ID]) Fill(_ context.Context, entities []E) error {
	repo.Lock()
	defer repo.Unlock()

	return repo.replace(entities, errFillFailed)
}

// Import discards the current collection and replaces it with entities,
// each of them created as if passed to Create: with a new id and a creation time.
// It returns the stored entities.
func (repo *MemoryRepository[E, ID]) Import(ctx context.Context, entities []E) ([]E, error) {
	created := make([]E, 0, len(entities))

	for _, e := range entities {
		id, err := repo.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errCreateFailed, err)
		}

		repo.setID(&e, id)
		repo.stamp(&e, repo.createdAtFieldName)

		created = append(created, e)
	}

	repo.Lock()
	defer repo.Unlock()

	if err := repo.replace(created, errCreateFailed); err != nil {
		return nil, err
	}

	return slices.Clone(created), nil
}

// replace swaps the collection. The caller MUST hold the lock.
func (repo *MemoryRepository[E, ID]) replace(entities []E, errFailed error) error {
	oldData := repo.Data

	repo.Data = make([]E, len(entities))
	copy(repo.Data, entities)

	err := repo.store.Store(repo.filename, repo.Data)
	if err != nil {
		repo.Data = oldData
		return fmt.Errorf("%w: %w", errFailed, err)
	}

	return nil
}
