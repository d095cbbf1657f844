// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/jeevita-backend/internal/config"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/handlers"
	"github.com/your-org/jeevita-backend/internal/interfaces/http/middleware"
)

// Handlers bundles the constructed handlers for route registration
type Handlers struct {
	Auth         *handlers.AuthHandler
	Catalog      *handlers.CatalogHandler
	Cart         *handlers.CartHandler
	Chat         *handlers.ChatHandler
	Prescription *handlers.PrescriptionHandler
	Payment      *handlers.PaymentHandler
	Admin        *handlers.AdminHandler
	Navigation   *handlers.NavigationHandler
	Language     *handlers.LanguageHandler
}

// SetupRoutes wires every handler into the versioned API group
func SetupRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	setupAuthRoutes(rg, h, cfg)
	setupCatalogRoutes(rg, h, cfg)
	setupCartRoutes(rg, h, cfg)
	setupChatRoutes(rg, h, cfg)
	setupPaymentRoutes(rg, h, cfg)
	setupNavigationRoutes(rg, h)
	setupAdminRoutes(rg, h, cfg)
}

func setupAuthRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/login", h.Auth.Login)
		auth.POST("/admin-login", h.Auth.AdminLogin)
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/refresh", h.Auth.Refresh)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", h.Auth.Logout)
			protected.GET("/me", h.Auth.Me)
		}
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	catalog := rg.Group("")
	catalog.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		catalog.GET("/doctors", h.Catalog.ListDoctors)
		catalog.GET("/doctors/:id", h.Catalog.GetDoctor)
		catalog.GET("/medicines", h.Catalog.ListMedicines)
		catalog.GET("/medicines/:id", h.Catalog.GetMedicine)
		catalog.GET("/hospitals", h.Catalog.ListHospitals)
		catalog.GET("/hospitals/:id", h.Catalog.GetHospital)
		catalog.GET("/carousel", h.Catalog.GetCarousel)

		catalog.GET("/language", h.Language.Get)
		catalog.POST("/language/toggle", h.Language.Toggle)
		catalog.GET("/language/translate", h.Language.Translate)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", h.Cart.GetCart)
		cart.POST("/items", h.Cart.AddToCart)
		cart.PUT("/items/:id", h.Cart.UpdateCartItem)
		cart.DELETE("/items/:id", h.Cart.RemoveCartItem)
		cart.DELETE("", h.Cart.ClearCart)
	}
}

func setupChatRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	chat := rg.Group("/chat")
	chat.Use(middleware.AuthMiddleware(cfg))
	{
		chat.POST("", h.Chat.RequestChat)
		chat.POST("/reply", h.Chat.UserReply)
	}

	prescriptions := rg.Group("/prescriptions")
	prescriptions.Use(middleware.AuthMiddleware(cfg))
	{
		prescriptions.POST("", h.Prescription.Submit)
	}
}

func setupPaymentRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	payment := rg.Group("/payment")
	payment.Use(middleware.AuthMiddleware(cfg))
	{
		payment.GET("/info", h.Payment.GetInfo)
		payment.POST("/submit", h.Payment.Submit)
	}
}

func setupNavigationRoutes(rg *gin.RouterGroup, h *Handlers) {
	nav := rg.Group("/navigation")
	{
		nav.GET("", h.Navigation.Current)
		nav.POST("", h.Navigation.Navigate)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, h *Handlers, cfg *config.Config) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg)) // Require authentication
	admin.Use(middleware.AdminMiddleware())   // Require admin privileges
	{
		admin.GET("/dashboard", h.Admin.Dashboard)

		// User management
		users := admin.Group("/users")
		{
			users.GET("/pending", h.Admin.ListPendingUsers)
			users.GET("/activities", h.Admin.ListUserActivities)
			users.PUT("/:id/approve", h.Admin.ApproveUser)
			users.PUT("/:id/reject", h.Admin.RejectUser)
		}

		// Payment verification
		payments := admin.Group("/payments")
		{
			payments.GET("/pending", h.Admin.ListPendingPayments)
			payments.GET("/activities", h.Admin.ListPaymentActivities)
			payments.GET("/activities/:id/receipt", h.Payment.Receipt)
			payments.PUT("/:id/verify", h.Admin.VerifyPayment)
			payments.PUT("/:id/reject", h.Admin.RejectPayment)
		}

		// Appointment management
		appointments := admin.Group("/appointments")
		{
			appointments.GET("", h.Admin.ListAppointments)
			appointments.PUT("/:id/confirm", h.Admin.ConfirmAppointment)
			appointments.PUT("/:id/complete", h.Admin.CompleteAppointment)
			appointments.PUT("/:id/cancel", h.Admin.CancelAppointment)
			appointments.DELETE("/:id", h.Admin.DeleteAppointment)
		}

		// Refund management
		refunds := admin.Group("/refunds")
		{
			refunds.GET("", h.Admin.ListRefunds)
			refunds.PUT("/:id/approve", h.Admin.ApproveRefund)
			refunds.PUT("/:id/reject", h.Admin.RejectRefund)
			refunds.DELETE("/:id", h.Admin.DeleteRefund)
		}

		// Live chat review
		messages := admin.Group("/messages")
		{
			messages.GET("", h.Chat.ListMessages)
			messages.GET("/unread-count", h.Chat.UnreadCount)
			messages.POST("/:id/reply", h.Chat.AdminReply)
			messages.PUT("/:id/read", h.Chat.MarkRead)
			messages.DELETE("/:id", h.Chat.DeleteMessage)
		}

		// Prescription review
		prescriptions := admin.Group("/prescriptions")
		{
			prescriptions.GET("", h.Prescription.List)
			prescriptions.PUT("/:id/approve", h.Prescription.Approve)
			prescriptions.PUT("/:id/reject", h.Prescription.Reject)
			prescriptions.DELETE("/:id", h.Prescription.Delete)
		}

		// Catalog management (session-local overlay)
		admin.POST("/doctors", h.Admin.AddDoctor)
		admin.DELETE("/doctors/:id", h.Admin.DeleteDoctor)
		admin.POST("/medicines", h.Admin.AddMedicine)
		admin.DELETE("/medicines/:id", h.Admin.DeleteMedicine)
		admin.POST("/carousel", h.Admin.AddCarouselSlide)
		admin.DELETE("/carousel/:id", h.Admin.DeleteCarouselSlide)
	}
}
