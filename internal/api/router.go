package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/minikart/commerce-api/docs"
	"github.com/minikart/commerce-api/internal/api/handler"
	"github.com/minikart/commerce-api/internal/api/middleware"
	"github.com/minikart/commerce-api/internal/core/service"
	mongodb "github.com/minikart/commerce-api/internal/infrastructure/db/mongo"
	"github.com/minikart/commerce-api/internal/pkg/config"
	"github.com/minikart/commerce-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, token.DefaultTTL)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, userRepo, log)

	userHandler := handler.NewUserHandler(authService, userService, cfg.IsProduction())
	productHandler := handler.NewProductHandler(productService)
	authGuard := middleware.Auth(cfg.JWTSecret)

	// --- User routes ---
	users := e.Group("/user")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout, authGuard)
	users.GET("/one-user/:id", userHandler.GetOne)
	users.GET("/all-user", userHandler.GetAll)
	users.DELETE("/delete/:id", userHandler.Delete)

	// --- Product routes ---
	products := e.Group("/product")
	products.POST("/create/:id", productHandler.Create, authGuard)
	products.GET("/all-product", productHandler.GetAll)
	products.POST("/update-product/:id", productHandler.Update)
	products.DELETE("/delete-product/:id", productHandler.Delete)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
