package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/internal/model"
	"github.com/pageza/recipebook/internal/service"
)

// RecipeHandler serves the recipe catalog over HTTP
type RecipeHandler struct {
	recipes service.IRecipeService
}

// NewRecipeHandler creates a handler backed by recipes
func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// RegisterRoutes mounts the catalog routes on router. writeMiddleware runs
// in front of every route that changes or persists the catalog.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, writeMiddleware ...gin.HandlerFunc) {
	write := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), handler)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:name", h.GetRecipe)
		recipes.POST("", write(h.CreateRecipe)...)
		recipes.DELETE("/:name", write(h.DeleteRecipe)...)
	}

	catalog := router.Group("/catalog")
	{
		catalog.POST("/save", write(h.SaveCatalog)...)
		catalog.POST("/load", write(h.LoadCatalog)...)
	}
}

// ListRecipes returns every recipe, or those in ?category= when given
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	raw, filtered := c.GetQuery("category")
	if !filtered {
		c.JSON(http.StatusOK, newRecipeResponses(h.recipes.List(c.Request.Context())))
		return
	}

	category, err := model.ParseCategory(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	recipes, err := h.recipes.FindByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecipeResponses(recipes))
}

// GetRecipe returns the recipe named in the path, ignoring case
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Find(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}

// CreateRecipe adds a recipe from the JSON body
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req service.AddRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, model.ErrValidation) {
			respondError(c, err)
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	recipe, err := h.recipes.Add(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRecipeResponse(recipe))
}

// DeleteRecipe removes the recipe named in the path
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.Remove(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveCatalog persists the catalog to its configured location
func (h *RecipeHandler) SaveCatalog(c *gin.Context) {
	report, err := h.recipes.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SaveResponse{
		Location: report.Location,
		Saved:    report.Saved,
		Skipped:  report.Skipped,
	})
}

// LoadCatalog replaces the in-memory catalog with the persisted one
func (h *RecipeHandler) LoadCatalog(c *gin.Context) {
	summary, err := h.recipes.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
