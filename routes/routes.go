package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/signup", handlers.Signup)
		public.POST("/auth/signin", handlers.Signin)
		public.POST("/auth/reset-password", handlers.ResetPassword)

		// Menu browsing (no auth needed)
		public.GET("/menu/categories", handlers.GetCategories)
		public.GET("/menu/items", handlers.GetMenuItems)
		public.GET("/menu/category/:categoryId", handlers.GetMenuByCategory)
		public.GET("/menu/search", handlers.SearchMenu)

		public.GET("/health", handlers.HealthCheck)
	}

	// ── User routes (bearer token required) ────────────────────────
	user := r.Group("/api")
	user.Use(middleware.AuthRequired())
	{
		user.GET("/user/profile", handlers.GetProfile)
		user.PUT("/user/profile", handlers.UpdateProfile)

		user.GET("/cart", handlers.GetCart)
		user.POST("/cart/add", handlers.AddToCart)
		user.PUT("/cart/update/:itemId", handlers.UpdateCartItem)
		user.DELETE("/cart/remove/:itemId", handlers.RemoveFromCart)
		user.DELETE("/cart/clear", handlers.ClearCart)

		user.POST("/orders", handlers.CreateOrder)
		user.GET("/orders", handlers.GetOrders)
		user.GET("/orders/:orderId", handlers.GetOrder)
	}

	// ── Admin routes (bearer token + admin role) ───────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", handlers.AdminGetUsers)
		admin.GET("/orders", handlers.AdminGetOrders)
		admin.GET("/sales/summary", handlers.GetSalesSummary)
		admin.GET("/progress", handlers.GetProgress)
		admin.POST("/seed/demo", handlers.SeedDemoData)

		admin.GET("/menu/items", handlers.AdminListMenuItems)
		admin.POST("/menu/items", handlers.AdminCreateMenuItem)
		admin.PUT("/menu/items/:id", handlers.AdminUpdateMenuItem)
		admin.DELETE("/menu/items/:id", handlers.AdminDeleteMenuItem)
	}
}
