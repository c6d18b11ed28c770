package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zamretail/smartinvoice/internal/application/auth"
	"github.com/zamretail/smartinvoice/internal/application/fiscal"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Fiscal    *fiscal.Service
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Everything else requires a Bearer token: the operator identity is
	// reported to the gateway on every payload.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	invoiceHandler := NewInvoiceHandler(deps.Fiscal)
	invoices := protected.Group("/invoices")
	invoices.Post("/:id/confirm", invoiceHandler.Confirm)
	invoices.Post("/:id/qr", invoiceHandler.RegenerateQR)
	invoices.Post("/:id/printed", invoiceHandler.MarkPrinted)

	itemHandler := NewItemHandler(deps.Fiscal)
	items := protected.Group("/items")
	items.Post("/", itemHandler.Create)
	items.Put("/:id", itemHandler.Update)
	items.Post("/:id/quantity", itemHandler.SetQuantity)
	items.Post("/:id/composition/sync", itemHandler.SyncComposition)

	purchaseHandler := NewPurchaseHandler(deps.Fiscal)
	purchases := protected.Group("/purchases")
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/:invcNo/accept", purchaseHandler.Accept)
	purchases.Post("/:invcNo/reject", purchaseHandler.Reject)

	importHandler := NewImportHandler(deps.Fiscal)
	imports := protected.Group("/imports")
	imports.Get("/", importHandler.List)
	imports.Post("/:taskCd/approve", importHandler.Approve)
	imports.Post("/:taskCd/reject", importHandler.Reject)

	scrapHandler := NewScrapHandler(deps.Fiscal)
	protected.Post("/scraps/:id/confirm", scrapHandler.Confirm)

	catalogHandler := NewCatalogHandler(deps.Fiscal)
	catalogs := protected.Group("/catalogs")
	catalogs.Post("/sync", catalogHandler.Sync)
	catalogs.Get("/classifications", catalogHandler.Classifications)
	catalogs.Get("/common-codes", catalogHandler.CommonCodes)

	customerHandler := NewCustomerHandler(deps.Fiscal)
	protected.Put("/customers/:id/tpin", customerHandler.SetTPIN)
}
