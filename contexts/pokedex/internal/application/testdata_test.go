package application_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
	"github.com/go-arrower/catalog/repository"
)

var (
	ctx       = context.Background()
	fixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
)

const pokeListing = `{
	"count": 1302,
	"next": "https://pokeapi.co/api/v2/pokemon?offset=3&limit=3",
	"previous": null,
	"results": [
		{"name": "Bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
		{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"},
		{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}
	]
}`

func newPokemonRepository() *repository.MemoryRepository[pokedex.Pokemon, string] {
	return repository.NewMemoryRepository[pokedex.Pokemon, string](
		repository.WithClock(func() time.Time { return fixedTime }),
	)
}

// newPokeAPI returns a server answering every request with status and body.
func newPokeAPI(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func ptr[T any](v T) *T {
	return &v
}
