package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pizza-shop/controllers"
	"pizza-shop/middleware"
	"pizza-shop/services"
)

func SetupRoutes(router *gin.Engine, authService *services.AuthService, orderService *services.OrderService) {
	authCtrl := controllers.NewAuthController(authService)
	orderCtrl := controllers.NewOrderController(orderService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/signup", authCtrl.Signup)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/refresh", authCtrl.Refresh)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))
	{
		auth.GET("/auth/me", authCtrl.Me)

		auth.GET("/order/orders", orderCtrl.ListOrders)
		auth.POST("/order/orders", orderCtrl.CreateOrder)
		auth.GET("/order/order/:id", orderCtrl.GetOrder)
		auth.PUT("/order/order/:id", orderCtrl.UpdateOrder)
		auth.DELETE("/order/order/:id", orderCtrl.DeleteOrder)
		auth.PATCH("/order/order/status/:id", orderCtrl.UpdateOrderStatus)
		auth.GET("/order/user/:user_id/orders", orderCtrl.ListOrdersByUser)
		auth.GET("/order/user/:user_id/order/:order_id", orderCtrl.GetOrderForUser)
	}
}
