package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	tenantHandler *TenantHandler,
	userHandler *UserHandler,
	clientHandler *ClientHandler,
	productHandler *ProductHandler,
	campaignHandler *CampaignHandler,
	assetHandler *AssetHandler,
	leadHandler *LeadHandler,
	healthHandler *HealthHandler,
	tenantResolver fiber.Handler,
) {
	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// Auth routes (public)
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/crear-tienda", authHandler.CreateStore)

	// Session and store profile (protected)
	auth.Get("/me", tenantResolver, authHandler.Me)
	auth.Patch("/me", tenantResolver, authHandler.UpdateMe)
	auth.Get("/tenant", tenantResolver, tenantHandler.Get)
	auth.Patch("/tenant", tenantResolver, tenantHandler.Update)
	auth.Post("/tenant/api-key", tenantResolver, tenantHandler.RotateAPIKey)

	// User management (protected)
	users := app.Group("/usuarios", tenantResolver)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Patch("/:id", userHandler.SetActivo)
	users.Delete("/:id", userHandler.Delete)

	// Clients (protected)
	clients := app.Group("/clientes", tenantResolver)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Patch("/:id/inactivar", clientHandler.Inactivar)

	// Products (protected)
	products := app.Group("/productos", tenantResolver)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/inactivar", productHandler.Inactivar)

	// Campaigns (protected)
	campaigns := app.Group("/campanas", tenantResolver)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.Get)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Put("/:id", campaignHandler.Update)
	campaigns.Patch("/:id/estado", campaignHandler.UpdateEstado)

	// Audiovisual pieces (protected)
	assets := app.Group("/audiovisuales", tenantResolver)
	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Post("/presign", assetHandler.Presign)
	assets.Post("/confirmar", assetHandler.Confirm)
	assets.Patch("/:id/estado", assetHandler.UpdateEstado)

	// Leads (protected, typically via tenant API key)
	leads := app.Group("/leads", tenantResolver)
	leads.Post("/", leadHandler.Create)
}
