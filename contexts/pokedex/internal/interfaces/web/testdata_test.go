package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/go-arrower/catalog"
	"github.com/go-arrower/catalog/alog"
	"github.com/go-arrower/catalog/app"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/application"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/domain/pokedex"
	"github.com/go-arrower/catalog/contexts/pokedex/internal/interfaces/web"
	"github.com/go-arrower/catalog/fetch"
	"github.com/go-arrower/catalog/repository"
)

const unknownID = "00000000-0000-4000-8000-000000000000"

// newTestRouter returns a router serving the pokedex, seeding from a server answering with status and body.
func newTestRouter(t *testing.T, status int, body string) *echo.Echo {
	t.Helper()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(api.Close)

	repo := repository.NewMemoryRepository[pokedex.Pokemon, string]()

	di := application.App{
		CreatePokemon: app.NewValidatedRequest(nil, application.NewCreatePokemonRequestHandler(repo)),
		ListPokemon:   app.NewValidatedQuery(nil, application.NewListPokemonQueryHandler(repo)),
		GetPokemon:    app.NewValidatedQuery(nil, application.NewGetPokemonQueryHandler(repo)),
		UpdatePokemon: app.NewValidatedRequest(nil, application.NewUpdatePokemonRequestHandler(repo)),
		DeletePokemon: app.NewValidatedCommand(nil, application.NewDeletePokemonCommandHandler(repo)),
		Seed: app.NewValidatedRequest(nil,
			application.NewSeedRequestHandler(repo, fetch.NewHTTPAdapter(), api.URL),
		),
	}

	e := echo.New()
	e.HTTPErrorHandler = catalog.HTTPErrorHandler(alog.NewNoop())

	pc := web.NewPokemonController(di)
	e.GET("/pokemon", pc.List())
	e.POST("/pokemon", pc.Create())
	e.GET("/pokemon/:id", pc.Show())
	e.PATCH("/pokemon/:id", pc.Update())
	e.DELETE("/pokemon/:id", pc.Delete())

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

const pokeListing = `{"count":1302,"next":null,"previous":null,"results":[
	{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
	{"name":"Pikachu","url":"https://pokeapi.co/api/v2/pokemon/25/"}
]}`
