package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"emoji-shop/controllers"
	"emoji-shop/services"
)

func SetupRoutes(router *gin.Engine, catalog *services.CatalogService) {
	catalogCtrl := controllers.NewCatalogController(catalog)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/product", catalogCtrl.GetProduct)
		api.GET("/products", catalogCtrl.ListProducts)
		api.POST("/products", catalogCtrl.SaveProduct)
	}
}
