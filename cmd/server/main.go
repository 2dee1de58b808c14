package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-retail-pos/internal/auth"
	"go-retail-pos/internal/config"
	"go-retail-pos/internal/handlers"
	"go-retail-pos/internal/logger"
	"go-retail-pos/internal/middleware"
	"go-retail-pos/internal/store"
)

func main() {
	// A plain .env next to the binary is how shop machines get configured.
	if err := godotenv.Load(); err != nil {
		// Not an error: production machines can use real env vars.
	}
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		panic(err)
	}
	log := zap.L()

	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer s.Close()
	log.Info("store ready", zap.String("path", cfg.DatabasePath))

	if err := s.EnsureAdminUser(cfg.AdminUser, cfg.AdminPassword); err != nil {
		log.Fatal("failed to seed admin user", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	a := auth.New(cfg.JWTSecret)
	h := handlers.New(s, a, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/login", h.Login)

	if cfg.AllowRegistration {
		r.POST("/register", h.Register)
		log.Warn("registration route is OPEN; disable ALLOW_REGISTRATION in production")
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(a))
	{
		// Open to every logged-in role: the day-to-day register flow.
		api.GET("/products", h.GetProducts)
		api.POST("/checkout", h.Checkout)
		api.GET("/sales", h.ListSales)
		api.GET("/sales/:id/items/count", h.SaleItemCount)
		api.GET("/contacts", h.ListContacts)
		api.GET("/dashboard", h.Dashboard)
		api.GET("/settings/exchange-rate", h.GetExchangeRate)

		// Back-office operations.
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/contacts", h.SaveContact)
			admin.DELETE("/contacts/:id", h.DeleteContact)

			admin.POST("/products", h.AddProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.POST("/products/:id/stock", h.AdjustStock)

			admin.POST("/purchases", h.CreatePurchase)
			admin.GET("/purchases", h.ListPurchases)
			admin.GET("/purchases/:id/lines", h.GetPurchaseLines)

			admin.GET("/settings", h.GetSettings)
			admin.PUT("/settings", h.UpdateSettings)
			admin.PUT("/settings/exchange-rate", h.SetExchangeRate)

			admin.GET("/export/products.xlsx", h.ExportProductsExcel)
			admin.GET("/export/products.csv", h.ExportProductsCSV)
			admin.GET("/export/sales.xlsx", h.ExportSalesExcel)
			admin.POST("/import/products", h.ImportProducts)

			admin.POST("/ask", h.Ask)
		}
	}

	log.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server failed to start", zap.Error(err))
	}
}
