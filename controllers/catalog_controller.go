package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LmaoGamer22487/MyWellness-App/catalog"
	"github.com/LmaoGamer22487/MyWellness-App/utils"
)

// CatalogController serves the static reference data. Responses never change
// per user, so rendered drink listings are cached in Redis.
type CatalogController struct{}

// NewCatalogController creates a CatalogController.
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// Drinks returns catalog entries filtered by the optional search and
// category query parameters.
func (c *CatalogController) Drinks(ctx *gin.Context) {
	search := ctx.Query("search")
	category := ctx.Query("category")

	key := "cache:drinks:" + search + ":" + category
	if b, ok := utils.CacheGetBytes(key); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	drinks := catalog.Drinks(search, category)
	utils.CacheSetJSON(key, drinks, time.Hour)
	ctx.JSON(http.StatusOK, drinks)
}

// DrinkCategories returns the distinct drink categories, sorted.
func (c *CatalogController) DrinkCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.DrinkCategories())
}

// SpendingCategories returns the fixed spending category list.
func (c *CatalogController) SpendingCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.SpendingCategories())
}

// ExerciseTypes returns the fixed exercise type list.
func (c *CatalogController) ExerciseTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, catalog.ExerciseTypes())
}
