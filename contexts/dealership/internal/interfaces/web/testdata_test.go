package web_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog"
	"github.com/go-arrower/catalog/alog"
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/dealership/internal/application"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
	"github.com/go-arrower/catalog/contexts/dealership/internal/interfaces/web"
	"github.com/go-arrower/catalog/repository"
)

var ctx = context.Background()

const (
	toyotaID  = "ca1ad151-b0ab-436b-a2ee-044729f07820"
	unknownID = "00000000-0000-4000-8000-000000000000"
)

// newTestRouter returns a router serving the dealership with seeded repositories.
func newTestRouter() *echo.Echo {
	brands := repository.NewMemoryRepository[dealership.Brand, string]()
	cars := repository.NewMemoryRepository[dealership.Car, string]()

	di := application.App{
		CreateBrand: app.NewValidatedRequest(nil, application.NewCreateBrandRequestHandler(brands)),
		ListBrands:  app.NewValidatedQuery(nil, application.NewListBrandsQueryHandler(brands)),
		GetBrand:    app.NewValidatedQuery(nil, application.NewGetBrandQueryHandler(brands)),
		UpdateBrand: app.NewValidatedRequest(nil, application.NewUpdateBrandRequestHandler(brands)),
		DeleteBrand: app.NewValidatedCommand(nil, application.NewDeleteBrandCommandHandler(brands)),
		CreateCar:   app.NewValidatedRequest(nil, application.NewCreateCarRequestHandler(cars)),
		ListCars:    app.NewValidatedQuery(nil, application.NewListCarsQueryHandler(cars)),
		GetCar:      app.NewValidatedQuery(nil, application.NewGetCarQueryHandler(cars)),
		UpdateCar:   app.NewValidatedRequest(nil, application.NewUpdateCarRequestHandler(cars)),
		DeleteCar:   app.NewValidatedCommand(nil, application.NewDeleteCarCommandHandler(cars)),
		Seed:        application.NewSeedRequestHandler(brands, cars, nil),
	}

	_, _ = di.Seed.H(ctx, application.SeedCommand{})

	e := echo.New()
	e.HTTPErrorHandler = catalog.HTTPErrorHandler(alog.NewNoop())

	bc := web.NewBrandsController(di)
	e.GET("/brands", bc.List())
	e.POST("/brands", bc.Create())
	e.GET("/brands/:id", bc.Show())
	e.PATCH("/brands/:id", bc.Update())
	e.DELETE("/brands/:id", bc.Delete())

	cc := web.NewCarsController(di)
	e.GET("/cars", cc.List())
	e.POST("/cars", cc.Create())
	e.GET("/cars/:id", cc.Show())
	e.PATCH("/cars/:id", cc.Update())
	e.DELETE("/cars/:id", cc.Delete())

	e.POST("/seed", web.NewSeedController(di).Seed())

	return e
}

func serve(e *echo.Echo, method string, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

