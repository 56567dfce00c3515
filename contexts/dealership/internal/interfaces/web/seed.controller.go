package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/contexts/dealership/internal/application"
)

func NewSeedController(app application.App) *SeedController {
	return &SeedController{app: app}
}

type SeedController struct {
	app application.App
}

func (sc *SeedController) Seed() func(echo.Context) error {
	return func(c echo.Context) error {
		res, err := sc.app.Seed.H(c.Request().Context(), application.SeedCommand{})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, res)
	}
}
