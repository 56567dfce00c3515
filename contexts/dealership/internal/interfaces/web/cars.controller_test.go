package web_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/catalog/contexts/dealership/internal/domain/dealership"
)

func TestCarsController(t *testing.T) {
	t.Parallel()

	e := newTestRouter()

	rec := serve(e, http.MethodPost, "/cars", `{"brand":"Toyota","model":"Yaris"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var car dealership.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &car))

	rec = serve(e, http.MethodGet, "/cars/"+car.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+car.ID+`","brand":"Toyota","model":"Yaris"}`, rec.Body.String())

	rec = serve(e, http.MethodPatch, "/cars/"+car.ID, `{"model":"GR Yaris"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+car.ID+`","brand":"Toyota","model":"GR Yaris"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/cars", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var cars []dealership.Car
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	assert.Len(t, cars, 4)
	assert.Equal(t, car.ID, cars[3].ID, "insertion order is kept")

	rec = serve(e, http.MethodDelete, "/cars/"+car.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(e, http.MethodDelete, "/cars/"+car.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCarsController_Create(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing model":  `{"brand":"Toyota"}`,
		"empty model":    `{"brand":"Toyota","model":""}`,
		"brand too long": `{"brand":"Toyota Motor Corporation","model":"Yaris"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := serve(newTestRouter(), http.MethodPost, "/cars", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
