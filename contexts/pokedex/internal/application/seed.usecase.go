package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
	"github.com/go-arrower/catalog/fetch"
)

var ErrSeedFailed = errors.New("seed failed")

const seedExecuted = "Seed executed"

type (
	// SeedCommand loads the pokemon listing from URL.
	// If URL is empty, the default listing of the handler is used.
	SeedCommand struct {
		URL string `json:"url" validate:"omitempty,url"`
	}

	SeedResponse struct {
		Inserted int    `json:"inserted"`
		Message  string `json:"message"`
	}
)

func NewSeedRequestHandler(
	repo pokedex.PokemonRepository,
	getter fetch.Getter,
	defaultURL string,
) app.Request[SeedCommand, SeedResponse] {
	return &seedRequestHandler{
		repo:       repo,
		getter:     getter,
		defaultURL: defaultURL,
	}
}

type seedRequestHandler struct {
	repo       pokedex.PokemonRepository
	getter     fetch.Getter
	defaultURL string
}

// H replaces all pokemon with the ones from the listing.
// The repository is only changed, if the whole listing could be fetched and converted.
func (h *seedRequestHandler) H(ctx context.Context, cmd SeedCommand) (SeedResponse, error) {
	url := cmd.URL
	if url == "" {
		url = h.defaultURL
	}

	res, err := fetch.Get[pokedex.PokeResponse](ctx, h.getter, url)
	if err != nil {
		return SeedResponse{}, fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}

	pokemon, err := res.Pokemon()
	if err != nil {
		return SeedResponse{}, fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}

	inserted, err := h.repo.Import(ctx, pokemon)
	if err != nil {
		return SeedResponse{}, fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}

	return SeedResponse{Inserted: len(inserted), Message: seedExecuted}, nil
}
