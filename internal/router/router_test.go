package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/internal/api"
	"github.com/pageza/recipebook/internal/middleware"
	"github.com/pageza/recipebook/internal/mocks"
	"github.com/pageza/recipebook/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockRecipeService)
	svc.On("List", mock.Anything).Return([]*model.Recipe{})
	router := SetupRouter(api.NewRecipeHandler(svc), nil, []string{"http://localhost:5173"})

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /api/v1/recipes",
		"GET /api/v1/recipes/:name",
		"POST /api/v1/recipes",
		"DELETE /api/v1/recipes/:name",
		"POST /api/v1/catalog/save",
		"POST /api/v1/catalog/load",
	} {
		assert.True(t, routes[want], want)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouterRegistersQuotaRouteWithLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockRecipeService)

	hasQuota := func(r *gin.Engine) bool {
		for _, route := range r.Routes() {
			if route.Method == http.MethodGet && route.Path == "/api/v1/rate-limit" {
				return true
			}
		}
		return false
	}

	assert.False(t, hasQuota(SetupRouter(api.NewRecipeHandler(svc), nil, nil)))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	limiter := middleware.NewCatalogWriteRateLimiter(client, 5, time.Minute)
	assert.True(t, hasQuota(SetupRouter(api.NewRecipeHandler(svc), limiter, nil)))
}
