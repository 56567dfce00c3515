package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/contexts/pokedex/internal/application"
)

func NewSeedController(app application.App) *SeedController {
	return &SeedController{app: app}
}

type SeedController struct {
	app application.App
}

// Seed accepts an optional JSON body with the url of the listing to load.
func (sc *SeedController) Seed() func(echo.Context) error {
	return func(c echo.Context) error {
		var cmd application.SeedCommand
		if err := c.Bind(&cmd); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		res, err := sc.app.Seed.H(c.Request().Context(), cmd)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, res)
	}
}
