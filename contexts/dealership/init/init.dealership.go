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
	"github.com/go-arrower/catalog/contexts/dealership/internal/application"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
	"github.com/go-arrower/catalog/contexts/dealership/internal/interfaces/web"
	"github.com/go-arrower/catalog/repository"
)

const contextName = "dealership"

func NewDealershipContext(ctx context.Context, di *catalog.Container) (*DealershipContext, error) {
	err := ensureRequiredDependencies(di)
	if err != nil {
		return nil, fmt.Errorf("missing dependencies to initialise context dealership: %w", err)
	}

	dealershipContext := setupDealershipContext(di)

	di.Logger.DebugContext(ctx, "context dealership initialised")

	return dealershipContext, nil
}

type DealershipContext struct {
	globalContainer *catalog.Container

	app application.App

	brandsController *web.BrandsController
	carsController   *web.CarsController
	seedController   *web.SeedController
}

// Seed replaces all brands and cars with the fixtures.
func (c *DealershipContext) Seed(ctx context.Context) (string, error) {
	res, err := c.app.Seed.H(ctx, application.SeedCommand{})
	if err != nil {
		return "", fmt.Errorf("could not seed dealership: %w", err)
	}

	return res.Message, nil
}

func (c *DealershipContext) Shutdown(_ context.Context) error {
	return nil
}

func ensureRequiredDependencies(di *catalog.Container) error {
	if di == nil {
		return fmt.Errorf("%w: container", catalog.ErrMissingDependency)
	}

	if di.Logger == nil {
		return fmt.Errorf("%w: logger", catalog.ErrMissingDependency)
	}

	if di.APIRouter == nil {
		return fmt.Errorf("%w: api router", catalog.ErrMissingDependency)
	}

	if di.TraceProvider == nil || di.MeterProvider == nil {
		return fmt.Errorf("%w: observability providers", catalog.ErrMissingDependency)
	}

	return nil
}

func setupDealershipContext(di *catalog.Container) *DealershipContext {
	logger := di.Logger.With(slog.String("context", contextName))

	opts := di.RepositoryOptions()
	brands := repository.NewMemoryRepository[dealership.Brand, string](opts...)
	cars := repository.NewMemoryRepository[dealership.Car, string](opts...)

	in := di.Instrumentation()
	in.Logger = logger

	appDI := setupApplication(in, brands, cars)

	dealershipContext := &DealershipContext{
		globalContainer:  di,
		app:              appDI,
		brandsController: web.NewBrandsController(appDI),
		carsController:   web.NewCarsController(appDI),
		seedController:   web.NewSeedController(appDI),
	}

	registerAPIRoutes(dealershipContext)

	return dealershipContext
}

func setupApplication(
	in app.Instrumentation,
	brands dealership.BrandRepository,
	cars dealership.CarRepository,
) application.App {
	return application.App{
		CreateBrand: app.NewInstrumentedRequest(in, application.NewCreateBrandRequestHandler(brands)),
		ListBrands:  app.NewInstrumentedQuery(in, application.NewListBrandsQueryHandler(brands)),
		GetBrand:    app.NewInstrumentedQuery(in, application.NewGetBrandQueryHandler(brands)),
		UpdateBrand: app.NewInstrumentedRequest(in, application.NewUpdateBrandRequestHandler(brands)),
		DeleteBrand: app.NewInstrumentedCommand(in, application.NewDeleteBrandCommandHandler(brands)),

		CreateCar: app.NewInstrumentedRequest(in, application.NewCreateCarRequestHandler(cars)),
		ListCars:  app.NewInstrumentedQuery(in, application.NewListCarsQueryHandler(cars)),
		GetCar:    app.NewInstrumentedQuery(in, application.NewGetCarQueryHandler(cars)),
		UpdateCar: app.NewInstrumentedRequest(in, application.NewUpdateCarRequestHandler(cars)),
		DeleteCar: app.NewInstrumentedCommand(in, application.NewDeleteCarCommandHandler(cars)),

		Seed: app.NewInstrumentedRequest(in, application.NewSeedRequestHandler(brands, cars, nil)),
	}
}
