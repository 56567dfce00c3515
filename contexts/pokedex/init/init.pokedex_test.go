package init_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/catalog"
	pokedex "github.com/go-arrower/catalog/contexts/pokedex/init"
)

var ctx = context.Background()

func TestNewPokedexContext(t *testing.T) {
	t.Parallel()

	t.Run("missing dependencies", func(t *testing.T) {
		t.Parallel()

		_, err := pokedex.NewPokedexContext(ctx, &catalog.Container{})
		assert.ErrorIs(t, err, catalog.ErrMissingDependency)
	})

	t.Run("seed from configured url", func(t *testing.T) {
		t.Parallel()

		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"count":1,"results":[{"name":"pikachu","url":"https://pokeapi.co/api/v2/pokemon/25/"}]}`)
		}))
		t.Cleanup(api.Close)

		di, err := catalog.InitialiseDefaultDependencies(ctx, &catalog.Config{
			Environment: catalog.TestEnv,
			Pokedex:     catalog.Pokedex{SeedURL: api.URL},
		})
		require.NoError(t, err)

		pc, err := pokedex.NewPokedexContext(ctx, di)
		require.NoError(t, err)

		msg, err := pc.Seed(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, "Seed executed: 1 pokemon", msg)

		rec := httptest.NewRecorder()
		di.WebRouter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"pikachu","no":25`)

		assert.NoError(t, pc.Shutdown(ctx))
	})
}
