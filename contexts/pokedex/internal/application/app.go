package application

import (
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
)

// App is a dependency injection container.
type App struct {
	CreatePokemon app.Request[CreatePokemonRequest, pokedex.Pokemon]
	ListPokemon   app.Query[ListPokemonQuery, []pokedex.Pokemon]
	GetPokemon    app.Query[GetPokemonQuery, pokedex.Pokemon]
	UpdatePokemon app.Request[UpdatePokemonRequest, pokedex.Pokemon]
	DeletePokemon app.Command[DeletePokemonCommand]

	Seed app.Request[SeedCommand, SeedResponse]
}
