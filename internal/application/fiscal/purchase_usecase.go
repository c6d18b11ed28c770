package fiscal

import (
	"context"
	"errors"
	"fmt"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// FetchPurchaseSales lists supplier-reported sales awaiting a local decision.
// Results are cached per watermark; refresh forces a new pull.
func (s *Service) FetchPurchaseSales(ctx context.Context, refresh bool) ([]entity.PurchaseSale, error) {
	list, err := s.fetchPurchaseList(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("fetch purchase sales: %w", err)
	}

	sales := make([]entity.PurchaseSale, 0, len(list.SaleList))
	for _, e := range list.SaleList {
		sales = append(sales, purchaseFromEntry(e))
	}
	return sales, nil
}

func purchaseFromEntry(e gateway.PurchaseSaleEntry) entity.PurchaseSale {
	items := make([]entity.PurchaseItem, 0, len(e.ItemList))
	for _, it := range e.ItemList {
		items = append(items, entity.PurchaseItem{
			Sequence:           it.ItemSeq,
			ItemCode:           it.ItemCd,
			ClassificationCode: it.ItemClsCd,
			Name:               it.ItemNm,
			Barcode:            it.Bcd,
			PackagingUnitCode:  it.PkgUnitCd,
			Packaging:          it.Pkg,
			QuantityUnitCode:   it.QtyUnitCd,
			Quantity:           it.Qty,
			UnitPrice:          it.Prc,
			SupplyAmount:       it.SplyAmt,
			DiscountRate:       it.DcRt,
			DiscountAmount:     it.DcAmt,
			VATCategoryCode:    it.VatCatCd,
			TaxableAmount:      it.TaxblAmt,
			TaxAmount:          it.VatAmt,
			TotalAmount:        it.TotAmt,
		})
	}

	return entity.PurchaseSale{
		SupplierTPIN:      e.SpplrTpin,
		SupplierName:      e.SpplrNm,
		SupplierBranchID:  e.SpplrBhfID,
		SupplierInvoiceNo: e.SpplrInvcNo,
		ReceiptTypeCode:   e.RcptTyCd,
		PaymentTypeCode:   e.PmtTyCd,
		ConfirmDate:       e.CfmDt,
		SalesDate:         e.SalesDt,
		StockReleaseDate:  e.StockRlsDt,
		TotalItemCount:    e.TotItemCnt,
		TotalTaxable:      e.TotTaxblAmt,
		TotalTax:          e.TotTaxAmt,
		TotalAmount:       e.TotAmt,
		Remark:            e.Remark,
		Items:             items,
	}
}

// AcceptPurchase confirms a supplier-reported sale with the gateway and books
// the incoming stock: movement report, residual declaration, then the local
// ledger increment. Lines without a matching local item are confirmed but not
// stocked.
func (s *Service) AcceptPurchase(ctx context.Context, sale *entity.PurchaseSale, user entity.User) error {
	if err := s.decidePurchase(ctx, sale, zra.SalesStatusConfirmed, user); err != nil {
		return err
	}

	lines, err := s.matchPurchaseLines(ctx, sale)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		s.log.Warn().Int64("spplrInvcNo", sale.SupplierInvoiceNo).Msg("no purchase lines matched local items, skipping stock-in")
		return nil
	}

	now := s.now().In(s.loc)
	stockIn := gateway.BuildPurchaseStockItems(sale, lines, s.company, user, now)
	if err := stockCallResult(s.gw.SubmitStockItems(ctx, stockIn)); err != nil {
		if s.strictStock {
			return fmt.Errorf("report purchase stock-in: %w", err)
		}
		s.log.Error().Err(err).Int64("spplrInvcNo", sale.SupplierInvoiceNo).Msg("purchase stock-in submission failed, continuing")
	}

	balances := make([]gateway.StockBalance, 0, len(lines))
	for _, l := range lines {
		onHand, err := s.stock.OnHand(ctx, l.Item.ID)
		if err != nil {
			return fmt.Errorf("read on-hand for %s: %w", l.Item.ItemCode, err)
		}
		balances = append(balances, gateway.StockBalance{
			ItemCd: l.Item.ItemCode,
			RsdQty: gateway.ResidualQuantity(onHand, l.Entry.Quantity, true),
		})
	}

	master := gateway.BuildStockMaster(s.company, user, balances)
	if err := stockCallResult(s.gw.SubmitStockMaster(ctx, master)); err != nil {
		if s.strictStock {
			return fmt.Errorf("report purchase residuals: %w", err)
		}
		s.log.Error().Err(err).Int64("spplrInvcNo", sale.SupplierInvoiceNo).Msg("purchase stock master submission failed, continuing")
	}

	for _, l := range lines {
		if _, err := s.stock.ApplyDelta(ctx, l.Item.ID, l.Entry.Quantity); err != nil {
			return fmt.Errorf("apply stock delta for %s: %w", l.Item.ItemCode, err)
		}
	}
	return nil
}

// RejectPurchase records a rejection decision with the gateway. No stock
// moves.
func (s *Service) RejectPurchase(ctx context.Context, sale *entity.PurchaseSale, user entity.User) error {
	return s.decidePurchase(ctx, sale, zra.SalesStatusRejected, user)
}

func (s *Service) decidePurchase(ctx context.Context, sale *entity.PurchaseSale, statusCd string, user entity.User) error {
	payload := gateway.BuildPurchaseConfirmation(sale, statusCd, s.company, user)
	if _, err := s.gw.ConfirmPurchase(ctx, payload); err != nil {
		return fmt.Errorf("confirm purchase %d: %w", sale.SupplierInvoiceNo, err)
	}

	s.cache.invalidate()
	s.log.Info().
		Int64("spplrInvcNo", sale.SupplierInvoiceNo).
		Str("pchsSttsCd", statusCd).
		Msg("purchase decision recorded")
	return nil
}

// matchPurchaseLines resolves fetched purchase lines against the local item
// master by item code. Unknown codes are skipped with a warning.
func (s *Service) matchPurchaseLines(ctx context.Context, sale *entity.PurchaseSale) ([]gateway.PurchaseStockLine, error) {
	lines := make([]gateway.PurchaseStockLine, 0, len(sale.Items))
	for _, it := range sale.Items {
		item, err := s.items.GetByCode(ctx, it.ItemCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.Warn().Str("itemCd", it.ItemCode).Msg("purchase line has no local item, skipping")
				continue
			}
			return nil, err
		}
		lines = append(lines, gateway.PurchaseStockLine{Entry: it, Item: item})
	}
	return lines, nil
}
