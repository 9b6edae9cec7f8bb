package api

import (
	"rentdesk/server/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint onto the router. The uploads
// directory is served statically so stored object URLs resolve.
func SetupRoutes(router *gin.Engine, handler *Handler, cfg *config.Config) {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.Static("/uploads", handler.files.Dir())

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/logout", handler.AuthRequired(), handler.Logout)
			authGroup.GET("/me", handler.AuthRequired(), handler.Me)
			authGroup.POST("/avatar", handler.AuthRequired(), handler.UploadAvatar)
		}

		// signature-verified processor callback, no bearer token
		api.POST("/payments/webhook", handler.PaymentWebhook)

		authed := api.Group("", handler.AuthRequired())
		{
			authed.GET("/tenants/me", handler.GetOwnTenant)
			authed.GET("/payments", handler.ListPayments)
			authed.POST("/payments/intent", handler.CreatePaymentIntent)
			authed.GET("/maintenance", handler.ListMaintenance)
			authed.POST("/maintenance", handler.CreateMaintenance)
		}

		manager := api.Group("", handler.AuthRequired(), handler.ManagerOnly())
		{
			manager.GET("/properties", handler.ListProperties)
			manager.POST("/properties", handler.CreateProperty)
			manager.GET("/properties/:id", handler.GetProperty)
			manager.PUT("/properties/:id", handler.UpdateProperty)
			manager.DELETE("/properties/:id", handler.DeleteProperty)

			manager.GET("/tenants", handler.ListTenants)
			manager.POST("/tenants", handler.CreateTenant)
			manager.GET("/tenants/:id", handler.GetTenant)
			manager.PUT("/tenants/:id", handler.UpdateTenant)
			manager.DELETE("/tenants/:id", handler.DeleteTenant)

			manager.GET("/payments/summary", handler.PaymentSummary)
			manager.GET("/payments/:id", handler.GetPayment)
			manager.POST("/payments", handler.CreatePayment)
			manager.PUT("/payments/:id", handler.UpdatePayment)
			manager.DELETE("/payments/:id", handler.DeletePayment)

			manager.GET("/maintenance/:id", handler.GetMaintenance)
			manager.PUT("/maintenance/:id", handler.UpdateMaintenance)
			manager.DELETE("/maintenance/:id", handler.DeleteMaintenance)

			manager.GET("/documents", handler.ListDocuments)
			manager.POST("/documents", handler.UploadDocument)
			manager.GET("/documents/:id", handler.GetDocument)
			manager.DELETE("/documents/:id", handler.DeleteDocument)

			manager.GET("/dashboard/summary", handler.DashboardSummary)
			manager.GET("/dashboard/charts", handler.GetDashboardCharts)
			manager.PUT("/dashboard/charts", handler.SaveDashboardCharts)
			manager.GET("/dashboard/map", handler.PortfolioMap)
		}
	}
}
