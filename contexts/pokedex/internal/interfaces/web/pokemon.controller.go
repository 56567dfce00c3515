package web

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog/contexts/pokedex/internal/application"
)

func NewPokemonController(app application.App) *PokemonController {
	return &PokemonController{app: app}
}

type PokemonController struct {
	app application.App
}

// List supports paging with the query parameters limit and offset.
func (pc *PokemonController) List() func(echo.Context) error {
	return func(c echo.Context) error {
		var query application.ListPokemonQuery
		if err := c.Bind(&query); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		pokemon, err := pc.app.ListPokemon.H(c.Request().Context(), query)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, pokemon)
	}
}

func (pc *PokemonController) Show() func(echo.Context) error {
	return func(c echo.Context) error {
		pokemon, err := pc.app.GetPokemon.H(c.Request().Context(), application.GetPokemonQuery{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, pokemon)
	}
}

func (pc *PokemonController) Create() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.CreatePokemonRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		pokemon, err := pc.app.CreatePokemon.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusCreated, pokemon)
	}
}

func (pc *PokemonController) Update() func(echo.Context) error {
	return func(c echo.Context) error {
		var req application.UpdatePokemonRequest
		if err := c.Bind(&req); err != nil {
			return err //nolint:wrapcheck // keep the echo error, it carries the status code
		}

		req.ID = c.Param("id")

		pokemon, err := pc.app.UpdatePokemon.H(c.Request().Context(), req)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.JSON(http.StatusOK, pokemon)
	}
}

func (pc *PokemonController) Delete() func(echo.Context) error {
	return func(c echo.Context) error {
		err := pc.app.DeletePokemon.H(c.Request().Context(), application.DeletePokemonCommand{ID: c.Param("id")})
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
