package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
)

type (
	CreatePokemonRequest struct {
		Name string `json:"name" validate:"min=1"`
		No   int    `json:"no"   validate:"gt=0"`
	}

	// ListPokemonQuery pages through all pokemon. A Limit of 0 returns all pokemon after Offset.
	ListPokemonQuery struct {
		Limit  int `query:"limit"  validate:"gte=0"`
		Offset int `query:"offset" validate:"gte=0"`
	}

	GetPokemonQuery struct {
		ID string `validate:"uuid"`
	}

	UpdatePokemonRequest struct {
		ID   string  `json:"-"    validate:"uuid"`
		Name *string `json:"name" validate:"omitempty,min=1"`
		No   *int    `json:"no"   validate:"omitempty,gt=0"`
	}

	DeletePokemonCommand struct {
		ID string `validate:"uuid"`
	}
)

func NewCreatePokemonRequestHandler(repo pokedex.PokemonRepository) app.Request[CreatePokemonRequest, pokedex.Pokemon] {
	return &createPokemonRequestHandler{repo: repo}
}

type createPokemonRequestHandler struct {
	repo pokedex.PokemonRepository
}

// H stores a new pokemon. Pokemon names are kept in lower case.
func (h *createPokemonRequestHandler) H(ctx context.Context, req CreatePokemonRequest) (pokedex.Pokemon, error) {
	pokemon, err := h.repo.Create(ctx, pokedex.Pokemon{Name: strings.ToLower(req.Name), No: req.No})
	if err != nil {
		return pokedex.Pokemon{}, fmt.Errorf("could not create pokemon: %w", err)
	}

	return pokemon, nil
}

func NewListPokemonQueryHandler(repo pokedex.PokemonRepository) app.Query[ListPokemonQuery, []pokedex.Pokemon] {
	return &listPokemonQueryHandler{repo: repo}
}

type listPokemonQueryHandler struct {
	repo pokedex.PokemonRepository
}

func (h *listPokemonQueryHandler) H(ctx context.Context, query ListPokemonQuery) ([]pokedex.Pokemon, error) {
	pokemon, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list pokemon: %w", err)
	}

	if query.Offset >= len(pokemon) {
		return []pokedex.Pokemon{}, nil
	}

	pokemon = pokemon[query.Offset:]

	if query.Limit > 0 && query.Limit < len(pokemon) {
		pokemon = pokemon[:query.Limit]
	}

	return pokemon, nil
}

func NewGetPokemonQueryHandler(repo pokedex.PokemonRepository) app.Query[GetPokemonQuery, pokedex.Pokemon] {
	return &getPokemonQueryHandler{repo: repo}
}

type getPokemonQueryHandler struct {
	repo pokedex.PokemonRepository
}

func (h *getPokemonQueryHandler) H(ctx context.Context, query GetPokemonQuery) (pokedex.Pokemon, error) {
	pokemon, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return pokedex.Pokemon{}, fmt.Errorf("could not get pokemon: %w", err)
	}

	return pokemon, nil
}

func NewUpdatePokemonRequestHandler(repo pokedex.PokemonRepository) app.Request[UpdatePokemonRequest, pokedex.Pokemon] {
	return &updatePokemonRequestHandler{repo: repo}
}

type updatePokemonRequestHandler struct {
	repo pokedex.PokemonRepository
}

func (h *updatePokemonRequestHandler) H(ctx context.Context, req UpdatePokemonRequest) (pokedex.Pokemon, error) {
	patch := pokedex.PokemonPatch{No: req.No}

	if req.Name != nil {
		name := strings.ToLower(*req.Name)
		patch.Name = &name
	}

	pokemon, err := h.repo.Update(ctx, req.ID, patch)
	if err != nil {
		return pokedex.Pokemon{}, fmt.Errorf("could not update pokemon: %w", err)
	}

	return pokemon, nil
}

func NewDeletePokemonCommandHandler(repo pokedex.PokemonRepository) app.Command[DeletePokemonCommand] {
	return &deletePokemonCommandHandler{repo: repo}
}

type deletePokemonCommandHandler struct {
	repo pokedex.PokemonRepository
}

func (h *deletePokemonCommandHandler) H(ctx context.Context, cmd DeletePokemonCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("could not delete pokemon: %w", err)
	}

	return nil
}
