package init_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/catalog"
	dealership "github.com/go-arrower/catalog/contexts/dealership/init"
)

var ctx = context.Background()

func TestNewDealershipContext(t *testing.T) {
	t.Parallel()

	t.Run("missing dependencies", func(t *testing.T) {
		t.Parallel()

		_, err := dealership.NewDealershipContext(ctx, &catalog.Container{})
		assert.ErrorIs(t, err, catalog.ErrMissingDependency)
	})

	t.Run("serve seeded api", func(t *testing.T) {
		t.Parallel()

		di, err := catalog.InitialiseDefaultDependencies(ctx, &catalog.Config{Environment: catalog.TestEnv})
		require.NoError(t, err)

		dc, err := dealership.NewDealershipContext(ctx, di)
		require.NoError(t, err)

		msg, err := dc.Seed(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Seed executed", msg)

		rec := httptest.NewRecorder()
		di.WebRouter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cars/ca1ad151-b0ab-436b-a2ee-044729f07820", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Corolla")
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

		assert.NoError(t, dc.Shutdown(ctx))
	})
}
