package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/infrastructure/auth"
	"github.com/sportshop/backend/internal/infrastructure/config"
	"github.com/sportshop/backend/internal/interfaces/http/handler"
	"github.com/sportshop/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	System   *handler.SystemHandler
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Employee *handler.EmployeeHandler
	Report   *handler.ReportHandler
	Image    *handler.ImageHandler
}

// Config holds the router's dependencies
type Config struct {
	HTTP       config.HTTPConfig
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger
	Handlers   Handlers
}

// publicPaths lists routes reachable without a token. Catalog
// browsing is open to everyone; only the cart, orders and the admin
// panel require an account.
var publicPaths = []string{
	"/health",
	"/api/v1/auth/register",
	"/api/v1/auth/login",
	"/api/v1/auth/refresh",
}

var publicPathPrefixes = []string{
	"/api/v1/catalog",
	"/api/v1/images",
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg Config) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSOrigins,
			AllowMethods: middleware.DefaultCORSConfig().AllowMethods,
			AllowHeaders: middleware.DefaultCORSConfig().AllowHeaders,
			MaxAge:       middleware.DefaultCORSConfig().MaxAge,
		}),
		middleware.JWTAuth(middleware.JWTMiddlewareConfig{
			JWTService:       cfg.JWTService,
			TokenBlacklist:   cfg.Blacklist,
			SkipPaths:        publicPaths,
			SkipPathPrefixes: publicPathPrefixes,
			Logger:           cfg.Logger,
		}),
	)

	h := cfg.Handlers

	engine.GET("/health", h.System.Health)

	v1 := engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	catalogGroup := v1.Group("/catalog")
	{
		catalogGroup.GET("/products", h.Catalog.ListProducts)
		catalogGroup.GET("/products/:article", h.Catalog.GetProduct)
		catalogGroup.GET("/categories", h.Catalog.Categories)
		catalogGroup.GET("/brands", h.Catalog.ListBrands)
		catalogGroup.POST("/filter", h.Catalog.Filter)
	}

	imageGroup := v1.Group("/images")
	{
		imageGroup.GET("/products/:article", h.Image.ProductImage)
		imageGroup.GET("/brands/:id", h.Image.BrandImage)
	}

	cartGroup := v1.Group("/cart")
	{
		cartGroup.GET("", h.Cart.GetCart)
		cartGroup.DELETE("", h.Cart.Clear)
		cartGroup.POST("/items", h.Cart.AddItem)
		cartGroup.PUT("/items/:article", h.Cart.UpdateItem)
		cartGroup.DELETE("/items/:article", h.Cart.RemoveItem)
	}

	orderGroup := v1.Group("/orders")
	{
		orderGroup.POST("/checkout", h.Order.Checkout)
		orderGroup.GET("", h.Order.ListOrders)
		orderGroup.GET("/:id", h.Order.GetOrder)
	}

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.RequireAdministrator())
	{
		adminGroup.POST("/products", h.Catalog.CreateProduct)
		adminGroup.DELETE("/products/:article", h.Catalog.DeleteProduct)
		adminGroup.POST("/brands", h.Catalog.CreateBrand)

		adminGroup.POST("/employees", h.Employee.AddEmployee)
		adminGroup.GET("/employees", h.Employee.ListEmployees)
		adminGroup.DELETE("/employees/:email", h.Employee.RemoveEmployee)

		adminGroup.GET("/reports/daily-sales", h.Report.DailySales)
	}

	return engine
}
