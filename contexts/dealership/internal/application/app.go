package application

import (
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
)

// App is a dependency injection container.
type App struct {
	CreateBrand app.Request[CreateBrandRequest, dealership.Brand]
	ListBrands  app.Query[ListBrandsQuery, []dealership.Brand]
	GetBrand    app.Query[GetBrandQuery, dealership.Brand]
	UpdateBrand app.Request[UpdateBrandRequest, dealership.Brand]
	DeleteBrand app.Command[DeleteBrandCommand]

	CreateCar app.Request[CreateCarRequest, dealership.Car]
	ListCars  app.Query[ListCarsQuery, []dealership.Car]
	GetCar    app.Query[GetCarQuery, dealership.Car]
	UpdateCar app.Request[UpdateCarRequest, dealership.Car]
	DeleteCar app.Command[DeleteCarCommand]

	Seed app.Request[SeedCommand, SeedResponse]
}
