// Package pokedex contains the pokemon known to the catalog.
package pokedex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-arrower/catalog/repository"
)

// Pokemon is identified by its ID and carries its number in the national pokedex as No.
// CreatedAt and UpdatedAt are epoch milliseconds, set by the repository.
type Pokemon struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	No        int    `json:"no"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// PokemonPatch contains the fields of a Pokemon that can be changed after creation.
type PokemonPatch struct {
	Name *string
	No   *int
}

func (p PokemonPatch) Apply(pokemon Pokemon) Pokemon {
	if p.Name != nil {
		pokemon.Name = *p.Name
	}

	if p.No != nil {
		pokemon.No = *p.No
	}

	return pokemon
}

type PokemonRepository interface {
	repository.Repository[Pokemon, string]
}

var (
	ErrInvalidResourceURL = errors.New("invalid resource url")
	ErrInvalidEnvelope    = errors.New("invalid listing envelope")
)

// PokeResponse is one page of the named resource listing of the PokeAPI.
type PokeResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []SmallPokemon `json:"results"`
}

type SmallPokemon struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon converts all results into a Pokemon each, in the same order.
// If any of the urls does not carry a valid number, no Pokemon is returned.
// A response without results is not a listing and returns ErrInvalidEnvelope,
// an empty listing has to send "results": [].
func (res PokeResponse) Pokemon() ([]Pokemon, error) {
	if res.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrInvalidEnvelope)
	}

	pokemon := make([]Pokemon, 0, len(res.Results))

	for _, r := range res.Results {
		no, err := NumberFromURL(r.URL)
		if err != nil {
			return nil, err
		}

		pokemon = append(pokemon, Pokemon{Name: strings.ToLower(r.Name), No: no})
	}

	return pokemon, nil
}

// NumberFromURL returns the pokedex number of a resource url.
// It is the second-to-last path segment, e.g. 25 for https://pokeapi.co/api/v2/pokemon/25/.
func NumberFromURL(url string) (int, error) {
	segments := strings.Split(url, "/")
	if len(segments) < 2 { //nolint:mnd // need the second-to-last segment
		return 0, fmt.Errorf("%w: '%s' has no number segment", ErrInvalidResourceURL, url)
	}

	no, err := strconv.Atoi(segments[len(segments)-2])
	if err != nil || no <= 0 {
		return 0, fmt.Errorf("%w: '%s' does not end with a positive number", ErrInvalidResourceURL, url)
	}

	return no, nil
}
