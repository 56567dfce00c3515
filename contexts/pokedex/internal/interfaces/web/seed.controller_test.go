package web_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedController_Seed(t *testing.T) {
	t.Parallel()

	t.Run("seed", func(t *testing.T) {
		t.Parallel()

		e := newTestRouter(t, http.StatusOK, pokeListing)

		rec := serve(e, http.MethodPost, "/seed", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"inserted":2,"message":"Seed executed"}`, rec.Body.String())

		rec = serve(e, http.MethodGet, "/pokemon", "")
		assert.Contains(t, rec.Body.String(), `"name":"pikachu","no":25`)
	})

	t.Run("upstream fails", func(t *testing.T) {
		t.Parallel()

		e := newTestRouter(t, http.StatusInternalServerError, "")

		rec := serve(e, http.MethodPost, "/seed", "")
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		rec = serve(e, http.MethodGet, "/pokemon", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()

		e := newTestRouter(t, http.StatusOK, pokeListing)

		rec := serve(e, http.MethodPost, "/seed", `{"url":"not a url"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
