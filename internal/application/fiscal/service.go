package fiscal

import (
	"time"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/repository"
	"github.com/zamretail/smartinvoice/pkg/logger"
)

// Service orchestrates fiscalization: payload construction, submission,
// reconciliation and stock reporting. One instance serves all document kinds.
type Service struct {
	invoices  repository.InvoiceRepository
	items     repository.ItemRepository
	customers repository.CustomerRepository
	orders    repository.SalesOrderRepository
	rates     repository.CurrencyRateRepository
	stock     repository.StockRepository
	scraps    repository.ScrapRepository
	sequences repository.SequenceRepository
	catalogs  repository.CatalogRepository

	gw      Gateway
	company entity.Company

	// strictStock aborts confirmation when stock reporting fails instead of
	// logging and continuing.
	strictStock bool

	cache fetchCache

	log *logger.Logger
	loc *time.Location
	now func() time.Time
}

// Deps bundles the service's collaborators.
type Deps struct {
	Invoices  repository.InvoiceRepository
	Items     repository.ItemRepository
	Customers repository.CustomerRepository
	Orders    repository.SalesOrderRepository
	Rates     repository.CurrencyRateRepository
	Stock     repository.StockRepository
	Scraps    repository.ScrapRepository
	Sequences repository.SequenceRepository
	Catalogs  repository.CatalogRepository
	Gateway   Gateway
	Company   entity.Company
	Logger    *logger.Logger

	StrictStock bool
}

// NewService wires the fiscalization service. Timestamps embedded in fiscal
// numbers and dates are rendered in Lusaka local time.
func NewService(d Deps) *Service {
	loc, err := time.LoadLocation("Africa/Lusaka")
	if err != nil {
		loc = time.FixedZone("CAT", 2*60*60)
	}

	return &Service{
		invoices:    d.Invoices,
		items:       d.Items,
		customers:   d.Customers,
		orders:      d.Orders,
		rates:       d.Rates,
		stock:       d.Stock,
		scraps:      d.Scraps,
		sequences:   d.Sequences,
		catalogs:    d.Catalogs,
		gw:          d.Gateway,
		company:     d.Company,
		strictStock: d.StrictStock,
		log:         d.Logger.Component("fiscal"),
		loc:         loc,
		now:         time.Now,
	}
}
