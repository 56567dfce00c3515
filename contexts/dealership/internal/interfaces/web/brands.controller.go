package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/contexts/dealership/internal/application"
)

func NewBrandsController(app application.App) *BrandsController {
	return &BrandsController{app: app}
}

type BrandsController struct {
	app application.App
}

func (bc *BrandsController) List() func(echo.Context) error {
	return func(c echo.Context) error {
		brands, err := bc.app.ListBrands.H(c.Request().Context(), application.ListBrandsQuery{})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, brands)
	}
}

func (bc *BrandsController) Show() func(echo.Context) error {
	return func(c echo.Context) error {
		brand, err := bc.app.GetBrand.H(c.Request().Context(), application.GetBrandQuery{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, brand)
	}
}

func (bc *BrandsController) Create() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreateBrandRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		brand, err := bc.app.CreateBrand.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusCreated, brand)
	}
}

func (bc *BrandsController) Update() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.UpdateBrandRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		req.ID = c.Param("id")

		brand, err := bc.app.UpdateBrand.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, brand)
	}
}

func (bc *BrandsController) Delete() func(echo.Context) error {
	return func(c echo.Context) error {
		err := bc.app.DeleteBrand.H(c.Request().Context(), application.DeleteBrandCommand{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
