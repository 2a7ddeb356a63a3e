package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"emoji-shop/models"
	"emoji-shop/services"
)

type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{Service: service}
}

// @Summary Get product by key
// @Description Get a single product record from the blob store
// @Tags Products
// @Produce json
// @Param key query string true "Product key"
// @Success 200 {object} models.ProductResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/product [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Query parameter 'key' is required",
		})
		return
	}

	product, err := ctrl.Service.GetProduct(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch product",
			Error:   err.Error(),
		})
		return
	}

	// Absent keys surface as a null product, not a 404.
	c.JSON(http.StatusOK, models.ProductResponse{Product: product})
}

// @Summary List products
// @Description List every product in the catalog. Always responds 200; on store failure the list is empty and "error" is set.
// @Tags Products
// @Produce json
// @Success 200 {object} models.ProductListResponse
// @Router /api/products [get]
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	products, err := ctrl.Service.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("Failed listing products: %v", err)
		c.JSON(http.StatusOK, models.ProductListResponse{
			Products: []models.Product{},
			Error:    "Failed listing products",
		})
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{Products: products})
}

// @Summary Save product
// @Description Upsert a product record by its id
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product record"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *CatalogController) SaveProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product payload",
			Error:   err.Error(),
		})
		return
	}
	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	message, err := ctrl.Service.SaveProduct(c.Request.Context(), &product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save product",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}
