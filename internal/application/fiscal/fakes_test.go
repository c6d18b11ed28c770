package fiscal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/pkg/logger"
)

type fakeInvoices struct {
	byID    map[string]*entity.Invoice
	updates int
	notes   []string
	printed map[string]bool
}

func newFakeInvoices(invs ...*entity.Invoice) *fakeInvoices {
	f := &fakeInvoices{byID: map[string]*entity.Invoice{}, printed: map[string]bool{}}
	for _, inv := range invs {
		f.byID[inv.ID] = inv
	}
	return f
}

func (f *fakeInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	inv, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

func (f *fakeInvoices) GetByName(_ context.Context, name string) (*entity.Invoice, error) {
	for _, inv := range f.byID {
		if inv.Name == name {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("invoice %s: %w", name, domain.ErrNotFound)
}

func (f *fakeInvoices) Update(_ context.Context, inv *entity.Invoice) error {
	f.byID[inv.ID] = inv
	f.updates++
	return nil
}

func (f *fakeInvoices) MarkPrinted(_ context.Context, id string) error {
	f.printed[id] = true
	if inv, ok := f.byID[id]; ok {
		inv.IsPrinted = true
	}
	return nil
}

func (f *fakeInvoices) AppendNote(_ context.Context, _, note string) error {
	f.notes = append(f.notes, note)
	return nil
}

type fakeItems struct {
	byID    map[string]*entity.Item
	created []*entity.Item
	updated []*entity.Item
	taken   map[string]bool // codes owned by other items
	bom     map[string][]entity.BOMLine
}

func newFakeItems(items ...*entity.Item) *fakeItems {
	f := &fakeItems{byID: map[string]*entity.Item{}, taken: map[string]bool{}, bom: map[string][]entity.BOMLine{}}
	for _, it := range items {
		f.byID[it.ID] = it
	}
	return f
}

func (f *fakeItems) Create(_ context.Context, item *entity.Item) error {
	f.byID[item.ID] = item
	f.created = append(f.created, item)
	return nil
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return it, nil
}

func (f *fakeItems) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	for _, it := range f.byID {
		if it.ItemCode == code {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item code %s: %w", code, domain.ErrNotFound)
}

func (f *fakeItems) Update(_ context.Context, item *entity.Item) error {
	f.byID[item.ID] = item
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakeItems) CodeExists(_ context.Context, code, excludeID string) (bool, error) {
	if f.taken[code] {
		return true, nil
	}
	for _, it := range f.byID {
		if it.ItemCode == code && it.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItems) List(_ context.Context, _, _ int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(f.byID))
	for _, it := range f.byID {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeItems) GetComposition(_ context.Context, itemID string) ([]entity.BOMLine, error) {
	return f.bom[itemID], nil
}

type fakeStock struct {
	levels map[string]decimal.Decimal
	deltas map[string][]decimal.Decimal
}

func newFakeStock() *fakeStock {
	return &fakeStock{levels: map[string]decimal.Decimal{}, deltas: map[string][]decimal.Decimal{}}
}

func (f *fakeStock) OnHand(_ context.Context, itemID string) (decimal.Decimal, error) {
	return f.levels[itemID], nil
}

func (f *fakeStock) ApplyDelta(_ context.Context, itemID string, delta decimal.Decimal) (decimal.Decimal, error) {
	f.levels[itemID] = f.levels[itemID].Add(delta)
	f.deltas[itemID] = append(f.deltas[itemID], delta)
	return f.levels[itemID], nil
}

type fakeScraps struct {
	byID map[string]*entity.Scrap
	done map[string]bool
}

func (f *fakeScraps) GetByID(_ context.Context, id string) (*entity.Scrap, error) {
	sc, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("scrap %s: %w", id, domain.ErrNotFound)
	}
	return sc, nil
}

func (f *fakeScraps) MarkDone(_ context.Context, id string) error {
	f.done[id] = true
	return nil
}

type fakeOrders struct {
	byName map[string]*entity.SalesOrder
}

func (f *fakeOrders) GetByName(_ context.Context, name string) (*entity.SalesOrder, error) {
	o, ok := f.byName[name]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", name, domain.ErrNotFound)
	}
	return o, nil
}

type fakeRates struct {
	byCurrency map[string]*entity.CurrencyRate
}

func (f *fakeRates) LatestRate(_ context.Context, currency string) (*entity.CurrencyRate, error) {
	r, ok := f.byCurrency[currency]
	if !ok {
		return nil, fmt.Errorf("rate %s: %w", currency, domain.ErrNotFound)
	}
	return r, nil
}

type fakeCustomers struct {
	byID    map[string]*entity.Customer
	updated []*entity.Customer
}

func (f *fakeCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

func (f *fakeCustomers) Update(_ context.Context, c *entity.Customer) error {
	f.byID[c.ID] = c
	f.updated = append(f.updated, c)
	return nil
}

type fakeSequences struct {
	fiscal   int64
	itemCode int64
}

func (f *fakeSequences) NextFiscal(_ context.Context) (int64, error) {
	f.fiscal++
	return f.fiscal, nil
}

func (f *fakeSequences) NextItemCode(_ context.Context) (int64, error) {
	f.itemCode++
	return f.itemCode, nil
}

// fakeGateway records every payload and answers with canned results. Setting
// an err field makes the corresponding call fail.
type fakeGateway struct {
	salesDocs    []*gateway.SalesInvoice
	salesReceipt *gateway.ReceiptResult
	salesMsg     string
	salesErr     error

	stockItems      []*gateway.StockItems
	stockItemsErr   error
	stockItemsResp  *gateway.Response // overrides the canned success envelope
	stockMasters    []*gateway.StockMaster
	stockMasterErr  error
	stockMasterResp *gateway.Response

	itemRegs     []*gateway.ItemRegistration
	itemRegErr   error
	itemUpds     []*gateway.ItemRegistration
	compositions []*gateway.ItemComposition

	purchaseList    *gateway.PurchaseSaleList
	purchaseFetches int
	confirmations   []*gateway.PurchaseConfirmation
	confirmErr      error

	importList    *gateway.ImportItemList
	importFetches int
	importUpdates []*gateway.ImportUpdate

	classifications    *gateway.ClassificationList
	classificationsErr error
	commonCodes        *gateway.CodeList
}

func (g *fakeGateway) SubmitSales(_ context.Context, doc *gateway.SalesInvoice) (*gateway.ReceiptResult, string, error) {
	if g.salesErr != nil {
		return nil, "", g.salesErr
	}
	g.salesDocs = append(g.salesDocs, doc)
	return g.salesReceipt, g.salesMsg, nil
}

func (g *fakeGateway) SubmitStockItems(_ context.Context, p *gateway.StockItems) (*gateway.Response, error) {
	if g.stockItemsErr != nil {
		return nil, g.stockItemsErr
	}
	g.stockItems = append(g.stockItems, p)
	if g.stockItemsResp != nil {
		return g.stockItemsResp, nil
	}
	return &gateway.Response{ResultCd: "000", ResultMsg: "It is succeeded"}, nil
}

func (g *fakeGateway) SubmitStockMaster(_ context.Context, p *gateway.StockMaster) (*gateway.Response, error) {
	if g.stockMasterErr != nil {
		return nil, g.stockMasterErr
	}
	g.stockMasters = append(g.stockMasters, p)
	if g.stockMasterResp != nil {
		return g.stockMasterResp, nil
	}
	return &gateway.Response{ResultCd: "000", ResultMsg: "It is succeeded"}, nil
}

func (g *fakeGateway) RegisterItem(_ context.Context, p *gateway.ItemRegistration) (*gateway.Response, error) {
	if g.itemRegErr != nil {
		return nil, g.itemRegErr
	}
	g.itemRegs = append(g.itemRegs, p)
	return &gateway.Response{ResultCd: "000"}, nil
}

func (g *fakeGateway) UpdateItem(_ context.Context, p *gateway.ItemRegistration) (*gateway.Response, error) {
	g.itemUpds = append(g.itemUpds, p)
	return &gateway.Response{ResultCd: "000"}, nil
}

func (g *fakeGateway) SubmitItemComposition(_ context.Context, p *gateway.ItemComposition) (*gateway.Response, error) {
	g.compositions = append(g.compositions, p)
	return &gateway.Response{ResultCd: "000"}, nil
}

func (g *fakeGateway) FetchPurchaseSales(_ context.Context, _ *gateway.FetchRequest) (*gateway.PurchaseSaleList, error) {
	g.purchaseFetches++
	return g.purchaseList, nil
}

func (g *fakeGateway) ConfirmPurchase(_ context.Context, p *gateway.PurchaseConfirmation) (*gateway.Response, error) {
	if g.confirmErr != nil {
		return nil, g.confirmErr
	}
	g.confirmations = append(g.confirmations, p)
	return &gateway.Response{ResultCd: "000"}, nil
}

func (g *fakeGateway) FetchImports(_ context.Context, _ *gateway.FetchRequest) (*gateway.ImportItemList, error) {
	g.importFetches++
	return g.importList, nil
}

func (g *fakeGateway) UpdateImportItems(_ context.Context, p *gateway.ImportUpdate) (*gateway.Response, error) {
	g.importUpdates = append(g.importUpdates, p)
	return &gateway.Response{ResultCd: "000"}, nil
}

func (g *fakeGateway) FetchClassifications(_ context.Context, _ *gateway.FetchRequest) (*gateway.ClassificationList, error) {
	if g.classificationsErr != nil {
		return nil, g.classificationsErr
	}
	return g.classifications, nil
}

func (g *fakeGateway) FetchCommonCodes(_ context.Context, _ *gateway.FetchRequest) (*gateway.CodeList, error) {
	return g.commonCodes, nil
}

// fakeCatalogs keeps the last replaced catalogue copies in memory.
type fakeCatalogs struct {
	classifications []entity.ItemClassification
	codes           []entity.CommonCode
}

func (f *fakeCatalogs) ReplaceClassifications(_ context.Context, list []entity.ItemClassification) error {
	f.classifications = list
	return nil
}

func (f *fakeCatalogs) ReplaceCommonCodes(_ context.Context, list []entity.CommonCode) error {
	f.codes = list
	return nil
}

func (f *fakeCatalogs) ListClassifications(_ context.Context) ([]entity.ItemClassification, error) {
	return f.classifications, nil
}

func (f *fakeCatalogs) ListCommonCodes(_ context.Context, classCode string) ([]entity.CommonCode, error) {
	if classCode == "" {
		return f.codes, nil
	}
	var out []entity.CommonCode
	for _, c := range f.codes {
		if c.ClassCode == classCode {
			out = append(out, c)
		}
	}
	return out, nil
}

// testEnv bundles a service with all its fakes so assertions can reach them.
type testEnv struct {
	svc       *Service
	invoices  *fakeInvoices
	items     *fakeItems
	customers *fakeCustomers
	orders    *fakeOrders
	rates     *fakeRates
	stock     *fakeStock
	scraps    *fakeScraps
	sequences *fakeSequences
	catalogs  *fakeCatalogs
	gw        *fakeGateway
}

func newTestEnv() *testEnv {
	env := &testEnv{
		invoices:  newFakeInvoices(),
		items:     newFakeItems(),
		customers: &fakeCustomers{byID: map[string]*entity.Customer{}},
		orders:    &fakeOrders{byName: map[string]*entity.SalesOrder{}},
		rates:     &fakeRates{byCurrency: map[string]*entity.CurrencyRate{}},
		stock:     newFakeStock(),
		scraps:    &fakeScraps{byID: map[string]*entity.Scrap{}, done: map[string]bool{}},
		sequences: &fakeSequences{},
		catalogs:  &fakeCatalogs{},
		gw: &fakeGateway{
			salesReceipt: &gateway.ReceiptResult{
				RcptNo:           7,
				IntrlData:        "MRDJ2KJYIBSRQ2EM6QQFIC3HJE",
				RcptSign:         "X5C4LTWFVII7ZU4A",
				VsdcRcptPbctDate: "20250814093011",
				SdcID:            "SDC0010000001",
				MrcNo:            "WIS00000084",
				QRCodeURL:        "https://sandboxportal.zra.org.zm/common/link/ebm/receipt/indexEbmReceiptData?Data=1234567890000841234567",
			},
			salesMsg: "It is succeeded",
		},
	}

	env.svc = NewService(Deps{
		Invoices:  env.invoices,
		Items:     env.items,
		Customers: env.customers,
		Orders:    env.orders,
		Rates:     env.rates,
		Stock:     env.stock,
		Scraps:    env.scraps,
		Sequences: env.sequences,
		Catalogs:  env.catalogs,
		Gateway:   env.gw,
		Company: entity.Company{
			Name:     "Zambia Retail Ltd",
			TPIN:     "1234567890",
			BranchID: "000",
			SdcID:    "SDC0010000001",
			Currency: "ZMW",
		},
		Logger: logger.New(logger.Config{Env: "development", Level: "error"}),
	})
	env.svc.now = func() time.Time {
		return time.Date(2025, 8, 14, 9, 30, 5, 0, time.UTC)
	}
	env.svc.loc = time.UTC
	return env
}

func testUser() entity.User {
	return entity.User{ID: "7", Username: "chileshe", Name: "Chileshe"}
}
