package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"emoji-shop/config"
	"emoji-shop/middleware"
	"emoji-shop/repositories"
	"emoji-shop/routes"
	"emoji-shop/services"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		store, err := repositories.Connect(config.AppConfig)
		if err != nil {
			log.Fatalf("Failed to connect blob store: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, services.NewCatalogService(store))
	})
}

// Handler is the serverless entrypoint; the router is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
