package init

func registerAPIRoutes(di *DealershipContext) {
	{
		brands := di.globalContainer.APIRouter.Group("/brands")
		brands.GET("", di.brandsController.List())
		brands.POST("", di.brandsController.Create())
		brands.GET("/:id", di.brandsController.Show())
		brands.PATCH("/:id", di.brandsController.Update())
		brands.DELETE("/:id", di.brandsController.Delete())
	}

	{
		cars := di.globalContainer.APIRouter.Group("/cars")
		cars.GET("", di.carsController.List())
		cars.POST("", di.carsController.Create())
		cars.GET("/:id", di.carsController.Show())
		cars.PATCH("/:id", di.carsController.Update())
		cars.DELETE("/:id", di.carsController.Delete())
	}

	di.globalContainer.APIRouter.POST("/seed/dealership", di.seedController.Seed())
}
