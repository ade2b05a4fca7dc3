package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/laglace/stock-portal/internal/application/analytics"
	"github.com/laglace/stock-portal/internal/application/auth"
	appinventory "github.com/laglace/stock-portal/internal/application/inventory"
	"github.com/laglace/stock-portal/internal/application/orders"
	"github.com/laglace/stock-portal/internal/application/reporting"
	"github.com/laglace/stock-portal/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrdersUC    *orders.UseCase
	StockUC     *appinventory.StockUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	DirectoryUC *usecase.DirectoryUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *reporting.UseCase
	AIUC        *usecase.AIUseCase
	AuthUC      *auth.AuthUseCase
	PINGate     *auth.PINGate
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Público
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings/login-background", settingsHandler.LoginBackground)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	pin := RequirePIN(deps.PINGate)

	protected.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)

	// Pedidos y mesa de bodega. Las rutas fijas van antes de /:id.
	orderHandler := NewOrderHandler(deps.OrdersUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Import)
	ordersGroup.Post("/submit", orderHandler.Submit)
	ordersGroup.Get("/warehouse", orderHandler.WarehouseGroups)
	ordersGroup.Get("/shipments", orderHandler.Shipments)
	ordersGroup.Post("/bulk-confirm", pin, orderHandler.BulkConfirm)
	ordersGroup.Put("/tracking", orderHandler.SetTracking)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/confirm", pin, orderHandler.Confirm)
	ordersGroup.Post("/:id/reject", pin, orderHandler.Reject)
	ordersGroup.Put("/:id/items/:productId", orderHandler.AdjustQuantity)
	ordersGroup.Put("/:id/note", orderHandler.SetNote)

	// Catálogo
	canCreate := RequireCapability(deps.UserUC, CapCreateProducts)
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canCreate, productHandler.Create)
	products.Put("/:id", canCreate, productHandler.Update)
	products.Delete("/:id", canCreate, pin, productHandler.Delete)
	products.Post("/:id/stock", RequireCapability(deps.UserUC, CapAdjustStock), pin, inventoryHandler.AdjustStock)
	protected.Get("/inventory/summary", inventoryHandler.Summary)

	// Cuentas
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequireCapability(deps.UserUC, CapManageAccounts))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", pin, userHandler.Delete)

	// Directorio
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	protected.Get("/stores", directoryHandler.ListStores)
	protected.Post("/stores", directoryHandler.CreateStore)
	protected.Delete("/stores/:id", directoryHandler.DeleteStore)
	protected.Get("/influencers", directoryHandler.ListInfluencers)
	protected.Post("/influencers", directoryHandler.CreateInfluencer)
	protected.Delete("/influencers/:id", directoryHandler.DeleteInfluencer)

	// Anuncios y ajustes
	protected.Get("/announcements", settingsHandler.ListAnnouncements)
	protected.Post("/announcements", settingsHandler.CreateAnnouncement)
	protected.Put("/announcements/:id", settingsHandler.UpdateAnnouncement)
	protected.Delete("/announcements/:id", settingsHandler.DeleteAnnouncement)
	protected.Put("/settings/login-background", settingsHandler.SetLoginBackground)
	protected.Delete("/settings/login-background", settingsHandler.ResetLoginBackground)

	protected.Get("/reports/export", NewReportHandler(deps.ReportUC).Export)

	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/analyze", aiHandler.AnalyzeStock)
	protected.Post("/ai/chat", aiHandler.Chat)
}
