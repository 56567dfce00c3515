// Package init is the context's startup API.
//
// Put all initialisations here.
// For example, setup dependency injection and register routes.
package init

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-arrower/catalog"
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/application"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/interfaces/web"
	"github.com/go-arrower/catalog/fetch"
	"github.com/go-arrower/catalog/repository"
)

const contextName = "pokedex"

func NewPokedexContext(ctx context.Context, di *catalog.Container) (*PokedexContext, error) {
	err := ensureRequiredDependencies(di)
	if err != nil {
		return nil, fmt.Errorf("missing dependencies to initialise context pokedex: %w", err)
	}

	pokedexContext := setupPokedexContext(di)

	di.Logger.DebugContext(ctx, "context pokedex initialised",
		slog.String("seed_url", di.Config.Pokedex.SeedURL),
	)

	return pokedexContext, nil
}

type PokedexContext struct {
	globalContainer *catalog.Container

	app application.App

	pokemonController *web.PokemonController
	seedController    *web.SeedController
}

// Seed replaces all pokemon with the listing at url.
// If url is empty, the configured listing is used.
func (c *PokedexContext) Seed(ctx context.Context, url string) (string, error) {
	res, err := c.app.Seed.H(ctx, application.SeedCommand{URL: url})
	if err != nil {
		return "", fmt.Errorf("could not seed pokedex: %w", err)
	}

	return fmt.Sprintf("%s: %d pokemon", res.Message, res.Inserted), nil
}

func (c *PokedexContext) Shutdown(_ context.Context) error {
	return nil
}

func ensureRequiredDependencies(di *catalog.Container) error {
	if di == nil {
		return fmt.Errorf("%w: container", catalog.ErrMissingDependency)
	}

	if di.Logger == nil {
		return fmt.Errorf("%w: logger", catalog.ErrMissingDependency)
	}

	if di.Config == nil {
		return fmt.Errorf("%w: config", catalog.ErrMissingDependency)
	}

	if di.APIRouter == nil {
		return fmt.Errorf("%w: api router", catalog.ErrMissingDependency)
	}

	if di.HTTPClient == nil {
		return fmt.Errorf("%w: http client", catalog.ErrMissingDependency)
	}

	if di.TraceProvider == nil || di.MeterProvider == nil {
		return fmt.Errorf("%w: observability providers", catalog.ErrMissingDependency)
	}

	return nil
}

func setupPokedexContext(di *catalog.Container) *PokedexContext {
	logger := di.Logger.With(slog.String("context", contextName))

	repo := repository.NewMemoryRepository[pokedex.Pokemon, string](di.RepositoryOptions()...)
	pokeAPI := fetch.NewHTTPAdapter(fetch.WithHTTPClient(di.HTTPClient), fetch.WithLogger(logger))

	in := di.Instrumentation()
	in.Logger = logger

	appDI := application.App{
		CreatePokemon: app.NewInstrumentedRequest(in, application.NewCreatePokemonRequestHandler(repo)),
		ListPokemon:   app.NewInstrumentedQuery(in, application.NewListPokemonQueryHandler(repo)),
		GetPokemon:    app.NewInstrumentedQuery(in, application.NewGetPokemonQueryHandler(repo)),
		UpdatePokemon: app.NewInstrumentedRequest(in, application.NewUpdatePokemonRequestHandler(repo)),
		DeletePokemon: app.NewInstrumentedCommand(in, application.NewDeletePokemonCommandHandler(repo)),

		Seed: app.NewInstrumentedRequest(in,
			application.NewSeedRequestHandler(repo, pokeAPI, di.Config.Pokedex.SeedURL),
		),
	}

	pokedexContext := &PokedexContext{
		globalContainer:   di,
		app:               appDI,
		pokemonController: web.NewPokemonController(appDI),
		seedController:    web.NewSeedController(appDI),
	}

	registerAPIRoutes(pokedexContext)

	return pokedexContext
}
