package fiscal

import (
	"context"

	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
)

// Gateway is the outbound port to the VSDC device. The concrete client lives
// in infrastructure; use cases depend on this interface so tests can fake the
// authority.
type Gateway interface {
	SubmitSales(ctx context.Context, doc *gateway.SalesInvoice) (*gateway.ReceiptResult, string, error)
	SubmitStockItems(ctx context.Context, payload *gateway.StockItems) (*gateway.Response, error)
	SubmitStockMaster(ctx context.Context, payload *gateway.StockMaster) (*gateway.Response, error)
	RegisterItem(ctx context.Context, payload *gateway.ItemRegistration) (*gateway.Response, error)
	UpdateItem(ctx context.Context, payload *gateway.ItemRegistration) (*gateway.Response, error)
	SubmitItemComposition(ctx context.Context, payload *gateway.ItemComposition) (*gateway.Response, error)
	FetchPurchaseSales(ctx context.Context, req *gateway.FetchRequest) (*gateway.PurchaseSaleList, error)
	ConfirmPurchase(ctx context.Context, payload *gateway.PurchaseConfirmation) (*gateway.Response, error)
	FetchImports(ctx context.Context, req *gateway.FetchRequest) (*gateway.ImportItemList, error)
	UpdateImportItems(ctx context.Context, payload *gateway.ImportUpdate) (*gateway.Response, error)
	FetchClassifications(ctx context.Context, req *gateway.FetchRequest) (*gateway.ClassificationList, error)
	FetchCommonCodes(ctx context.Context, req *gateway.FetchRequest) (*gateway.CodeList, error)
}
