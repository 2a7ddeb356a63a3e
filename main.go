package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"emoji-shop/config"
	_ "emoji-shop/docs"
	"emoji-shop/middleware"
	"emoji-shop/repositories"
	"emoji-shop/routes"
	"emoji-shop/services"
)

// @title Emoji Shop API
// @version 1.0
// @description Demo storefront catalog over a key-value blob store.
// @BasePath /
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	store, err := repositories.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect blob store: %v", err)
	}
	defer store.Close()

	catalog := services.NewCatalogService(store)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, catalog)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
