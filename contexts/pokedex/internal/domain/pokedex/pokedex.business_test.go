package pokedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
)

func TestNumberFromURL(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		url   string
		expNo int
		err   error
	}{
		"pokeapi url": {
			"https://pokeapi.co/api/v2/pokemon/25/",
			25,
			nil,
		},
		"first pokemon": {
			"https://pokeapi.co/api/v2/pokemon/1/",
			1,
			nil,
		},
		"missing trailing slash": {
			"https://pokeapi.co/api/v2/pokemon/25",
			0,
			pokedex.ErrInvalidResourceURL,
		},
		"not a number": {
			"https://pokeapi.co/api/v2/pokemon/pikachu/",
			0,
			pokedex.ErrInvalidResourceURL,
		},
		"zero": {
			"https://pokeapi.co/api/v2/pokemon/0/",
			0,
			pokedex.ErrInvalidResourceURL,
		},
		"negative": {
			"https://pokeapi.co/api/v2/pokemon/-3/",
			0,
			pokedex.ErrInvalidResourceURL,
		},
		"no segments": {
			"25",
			0,
			pokedex.ErrInvalidResourceURL,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			no, err := pokedex.NumberFromURL(tt.url)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.expNo, no)
		})
	}
}

func TestPokeResponse_Pokemon(t *testing.T) {
	t.Parallel()

	t.Run("convert all results", func(t *testing.T) {
		t.Parallel()

		res := pokedex.PokeResponse{
			Count: 2,
			Results: []pokedex.SmallPokemon{
				{Name: "Pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"},
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
			},
		}

		pokemon, err := res.Pokemon()
		require.NoError(t, err)

		assert.Equal(t, []pokedex.Pokemon{{Name: "pikachu", No: 25}, {Name: "bulbasaur", No: 1}}, pokemon)
	})

	t.Run("one invalid url fails all", func(t *testing.T) {
		t.Parallel()

		res := pokedex.PokeResponse{
			Results: []pokedex.SmallPokemon{
				{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"},
				{Name: "missingno", URL: "https://pokeapi.co/api/v2/pokemon/"},
			},
		}

		pokemon, err := res.Pokemon()
		assert.ErrorIs(t, err, pokedex.ErrInvalidResourceURL)
		assert.Nil(t, pokemon)
	})

	t.Run("empty page", func(t *testing.T) {
		t.Parallel()

		pokemon, err := pokedex.PokeResponse{Results: []pokedex.SmallPokemon{}}.Pokemon()
		assert.NoError(t, err)
		assert.Empty(t, pokemon)
	})

	t.Run("missing results", func(t *testing.T) {
		t.Parallel()

		pokemon, err := pokedex.PokeResponse{Count: 1}.Pokemon()
		assert.ErrorIs(t, err, pokedex.ErrInvalidEnvelope)
		assert.Nil(t, pokemon)
	})
}

func TestPokemonPatch_Apply(t *testing.T) {
	t.Parallel()

	pokemon := pokedex.Pokemon{ID: "some-id", Name: "pikachu", No: 25, CreatedAt: 1}
	no := 26

	patched := pokedex.PokemonPatch{No: &no}.Apply(pokemon)

	assert.Equal(t, pokedex.Pokemon{ID: "some-id", Name: "pikachu", No: 26, CreatedAt: 1}, patched)
}
