package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/api"
	"github.com/pageza/recipebook/internal/router"
	"github.com/pageza/recipebook/internal/server"
	"github.com/pageza/recipebook/internal/service"
	"github.com/pageza/recipebook/internal/storage"
	"github.com/pageza/recipebook/internal/testhelpers"
)

// startAPI wires the full HTTP stack over gateway and returns its base URL.
func startAPI(t *testing.T, gateway storage.Gateway, location string) (string, *service.RecipeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recipes := service.NewRecipeService(gateway, location)
	_, err := recipes.Load(context.Background())
	require.NoError(t, err)

	engine := router.SetupRouter(api.NewRecipeHandler(recipes), nil, nil)
	srv := server.New(&config.Config{ServerHost: "127.0.0.1", ServerPort: "0"}, engine)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL, recipes
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, url, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

// exerciseCatalog drives a full session: add, query, remove, save, then
// reload through a fresh stack.
func exerciseCatalog(t *testing.T, gateway storage.Gateway, location string) {
	base, _ := startAPI(t, gateway, location)

	resp, _ := doJSON(t, http.MethodPost, base+"/api/v1/recipes", map[string]interface{}{
		"name":     "Pancakes",
		"category": "Main Course",
		"ingredients": []map[string]string{
			{"name": "Flour", "quantity": "2 cups"},
			{"name": "Milk", "quantity": "1 cup"},
		},
		"instructions": "Whisk and fry.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/recipes", map[string]interface{}{"name": "Salad", "category": 0})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, base+"/api/v1/recipes", map[string]interface{}{"name": "salad", "category": 2})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, base+"/api/v1/recipes?category=appetizer", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var appetizers []api.RecipeResponse
	require.NoError(t, json.Unmarshal(body, &appetizers))
	require.Len(t, appetizers, 1)
	assert.Equal(t, "Salad", appetizers[0].Name)

	resp, _ = doJSON(t, http.MethodDelete, base+"/api/v1/recipes/SALAD", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, base+"/api/v1/recipes/salad", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, base+"/api/v1/catalog/save", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"saved":1`)

	// a fresh stack sees what was saved
	reloaded, _ := startAPI(t, gateway, location)
	resp, body = doJSON(t, http.MethodGet, reloaded+"/api/v1/recipes/pancakes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pancakes api.RecipeResponse
	require.NoError(t, json.Unmarshal(body, &pancakes))
	assert.Equal(t, "Main Course", pancakes.Category)
	assert.Equal(t, []api.IngredientResponse{{Name: "Flour", Quantity: "2 cups"}, {Name: "Milk", Quantity: "1 cup"}}, pancakes.Ingredients)
	require.NotNil(t, pancakes.Instructions)
	assert.Equal(t, "Whisk and fry.", *pancakes.Instructions)

	resp, body = doJSON(t, http.MethodPost, reloaded+"/api/v1/catalog/load", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"loaded":1`)
}

func TestCatalogOverFileBackend(t *testing.T) {
	exerciseCatalog(t, storage.NewFileGateway(), filepath.Join(t.TempDir(), "recipes.json"))
}

func TestCatalogOverSQLiteBackend(t *testing.T) {
	exerciseCatalog(t, storage.NewSQLStore(testhelpers.SetupSQLiteDatabase(t)), "default")
}

func TestCatalogOverPostgresBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	exerciseCatalog(t, storage.NewSQLStore(testhelpers.SetupTestDatabase(t)), "default")
}

func TestCatalogOverRedisBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	exerciseCatalog(t, storage.NewRedisGateway(testhelpers.SetupRedis(t), "recipebook"), "default")
}

func TestNotFoundRouteIsJSON(t *testing.T) {
	base, _ := startAPI(t, storage.NewFileGateway(), filepath.Join(t.TempDir(), "recipes.json"))

	resp, body := doJSON(t, http.MethodGet, base+"/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"404 page not found"}`, string(body))
}
