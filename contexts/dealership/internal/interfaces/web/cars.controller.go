package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/contexts/dealership/internal/application"
)

func NewCarsController(app application.App) *CarsController {
	return &CarsController{app: app}
}

type CarsController struct {
	app application.App
}

func (cc *CarsController) List() func(echo.Context) error {
	return func(c echo.Context) error {
		cars, err := cc.app.ListCars.H(c.Request().Context(), application.ListCarsQuery{})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, cars)
	}
}

func (cc *CarsController) Show() func(echo.Context) error {
	return func(c echo.Context) error {
		car, err := cc.app.GetCar.H(c.Request().Context(), application.GetCarQuery{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, car)
	}
}

func (cc *CarsController) Create() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreateCarRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		car, err := cc.app.CreateCar.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusCreated, car)
	}
}

func (cc *CarsController) Update() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.UpdateCarRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		req.ID = c.Param("id")

		car, err := cc.app.UpdateCar.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, car)
	}
}

func (cc *CarsController) Delete() func(echo.Context) error {
	return func(c echo.Context) error {
		err := cc.app.DeleteCar.H(c.Request().Context(), application.DeleteCarCommand{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
