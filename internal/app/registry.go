package app

import (
	"database/sql"

	"github.com/aman52kwah/kaynetartsphere/internal/auth"
	"github.com/aman52kwah/kaynetartsphere/internal/cart"
	"github.com/aman52kwah/kaynetartsphere/internal/category"
	"github.com/aman52kwah/kaynetartsphere/internal/checkout"
	"github.com/aman52kwah/kaynetartsphere/internal/cloudinary"
	"github.com/aman52kwah/kaynetartsphere/internal/customorder"
	"github.com/aman52kwah/kaynetartsphere/internal/material"
	"github.com/aman52kwah/kaynetartsphere/internal/order"
	"github.com/aman52kwah/kaynetartsphere/internal/outbox"
	"github.com/aman52kwah/kaynetartsphere/internal/payment"
	"github.com/aman52kwah/kaynetartsphere/internal/paystack"
	"github.com/aman52kwah/kaynetartsphere/internal/product"
	"github.com/aman52kwah/kaynetartsphere/internal/style"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, cloudinaryService cloudinary.Service, paystackService paystack.Service, logger *zap.Logger) {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	styleRepo := style.NewRepository(db)
	materialRepo := material.NewRepository(db)
	productRepo := product.NewRepository(db)
	orderRepo := order.NewRepository(db)
	outboxRepo := outbox.NewRepository(db)

	// --- Stores ---
	cartStore := cart.NewStore(rdb, logger)
	draftStore := customorder.NewDraftStore(rdb, logger)

	// --- Services ---
	authService := auth.NewService(authRepo)
	categoryService := category.NewService(categoryRepo)
	styleService := style.NewService(styleRepo)
	materialService := material.NewService(materialRepo)
	productService := product.NewService(productRepo, cloudinaryService)
	cartService := cart.NewService(cartStore, productRepo)
	customOrderService := customorder.NewService(draftStore, cloudinaryService)
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Logger:     logger,
	})
	paymentService := payment.NewService(payment.Deps{
		Orders:   orderService,
		Paystack: paystackService,
		Logger:   logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		CartStore:  cartStore,
		DraftStore: draftStore,
		Orders:     orderService,
		Payments:   paymentService,
		Catalog:    productRepo,
		Logger:     logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	categoryHandler := category.NewHandler(categoryService)
	styleHandler := style.NewHandler(styleService)
	materialHandler := material.NewHandler(materialService)
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	customOrderHandler := customorder.NewHandler(customOrderService)
	orderHandler := order.NewHandler(orderService)
	paymentHandler := payment.NewHandler(paymentService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		category.RegisterRoutes(api, categoryHandler)
		style.RegisterRoutes(api, styleHandler)
		material.RegisterRoutes(api, materialHandler)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		customorder.RegisterRoutes(api, customOrderHandler)
		order.RegisterRoutes(api, orderHandler)
		payment.RegisterRoutes(api, paymentHandler)
		checkout.RegisterRoutes(api, checkoutHandler, rdb)
	}
}
