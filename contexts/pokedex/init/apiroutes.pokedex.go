package init

func registerAPIRoutes(di *PokedexContext) {
	pokemon := di.globalContainer.APIRouter.Group("/pokemon")
	pokemon.GET("", di.pokemonController.List())
	pokemon.POST("", di.pokemonController.Create())
	pokemon.GET("/:id", di.pokemonController.Show())
	pokemon.PATCH("/:id", di.pokemonController.Update())
	pokemon.DELETE("/:id", di.pokemonController.Delete())

	di.globalContainer.APIRouter.POST("/seed/pokedex", di.seedController.Seed())
}
