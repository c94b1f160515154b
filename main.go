package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"pizza-shop/config"
	_ "pizza-shop/docs"
	"pizza-shop/middleware"
	"pizza-shop/repositories"
	"pizza-shop/routes"
	"pizza-shop/services"
)

// @title Pizza Shop API
// @version 1.0
// @description Order-management backend: signup/login, pizza orders, status updates.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool := config.ConnectDB()
	defer pool.Close()

	userRepo := repositories.NewUserRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)

	authService := services.NewAuthService(userRepo)
	orderService := services.NewOrderService(orderRepo, userRepo)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, authService, orderService)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
