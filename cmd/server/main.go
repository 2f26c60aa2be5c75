package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"toy-store-backend/internal/config"
	"toy-store-backend/internal/controller"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/rabbit"
	"toy-store-backend/internal/repository"
	"toy-store-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No hay archivo .env, se usan las variables de entorno")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("error cargando configuración", zap.Error(err))
	}

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("error conectando a MongoDB", zap.Error(err))
	}
	db := client.Database(cfg.MongoDBName)

	// Conexión a RabbitMQ
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		logger.Fatal("error conectando a RabbitMQ", zap.Error(err))
	}
	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("error creando canal en RabbitMQ", zap.Error(err))
	}
	publisher, err := rabbit.NewPublisher(ch, logger)
	if err != nil {
		logger.Fatal("error declarando exchange", zap.Error(err))
	}

	// Repositorios
	orderRepo := repository.NewMongoOrderRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	supportRepo := repository.NewMongoSupportRepository(db)
	historyRepo := repository.NewMongoStockHistoryRepository(db)

	// Servicios
	ledger := service.NewStockLedger(orderRepo, productRepo, historyRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, ledger, publisher, logger)
	productService := service.NewProductService(productRepo, historyRepo, logger)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpires, cfg.JWTRefreshExpires)
	supportService := service.NewSupportService(supportRepo)

	// Controllers
	orderCtrl := controller.NewOrderController(orderService, logger)
	productCtrl := controller.NewProductController(productService, logger)
	userCtrl := controller.NewUserController(userService, logger)
	authCtrl := controller.NewAuthController(authService, logger)
	supportCtrl := controller.NewSupportController(supportService, logger)

	// Router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	requireAuth := middleware.RequireAuth(authService)
	adminOnly := middleware.AdminOnly()

	// Auth
	auth := api.Group("/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)
	auth.POST("/change-password", requireAuth, authCtrl.ChangePassword)

	// Catálogo público; escritura solo admin
	products := api.Group("/products")
	products.GET("", productCtrl.GetProducts)
	products.GET("/:id", productCtrl.GetProductByID)
	products.POST("", requireAuth, adminOnly, productCtrl.CreateProduct)
	products.PUT("/:id", requireAuth, adminOnly, productCtrl.UpdateProduct)
	products.DELETE("/:id", requireAuth, adminOnly, productCtrl.DeleteProduct)
	products.PATCH("/:id/stock", requireAuth, adminOnly, productCtrl.UpdateProductStock)
	products.GET("/:id/stock-history", requireAuth, adminOnly, productCtrl.GetStockHistory)

	// Órdenes
	orders := api.Group("/orders")
	orders.Use(requireAuth)
	orders.POST("", orderCtrl.CreateOrder)
	orders.GET("/my", orderCtrl.GetMyOrders)
	orders.GET("/:id", orderCtrl.GetOrderByID)
	orders.GET("", adminOnly, orderCtrl.GetAllOrders)
	orders.POST("/:id/cancel", orderCtrl.CancelOrder)
	orders.POST("/:id/return", orderCtrl.ReturnOrder)
	orders.PUT("/:id/status", adminOnly, orderCtrl.UpdateOrderStatus)

	// Usuarios
	users := api.Group("/users")
	users.Use(requireAuth)
	users.GET("/me", userCtrl.GetCurrentUser)
	users.PUT("/me", userCtrl.UpdateCurrentUser)
	users.GET("", adminOnly, userCtrl.GetUsers)
	users.PUT("/:id", adminOnly, userCtrl.UpdateUser)
	users.DELETE("/:id", adminOnly, userCtrl.DeleteUser)

	// Soporte
	support := api.Group("/support")
	support.Use(requireAuth)
	support.POST("/messages", supportCtrl.CreateMessage)
	support.GET("/my/messages", supportCtrl.GetMyMessages)
	support.GET("/conversations", adminOnly, supportCtrl.GetConversations)
	support.GET("/conversations/:id/messages", adminOnly, supportCtrl.GetConversationMessages)

	logger.Info("servidor escuchando", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("servidor caído", zap.Error(err))
	}
}
