package fiscal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/internal/domain/fiscal"
	"github.com/zamretail/smartinvoice/internal/infrastructure/gateway"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// ConfirmScrap reports an inventory write-off: a scrap movement to the
// stock-IO endpoint followed by the residual declaration, then the local
// ledger decrement. Unlike sales reporting, a gateway failure here aborts
// the validation; there is no receipt to protect.
func (s *Service) ConfirmScrap(ctx context.Context, scrapID string, user entity.User) error {
	scrap, err := s.scraps.GetByID(ctx, scrapID)
	if err != nil {
		return err
	}
	if scrap.Done {
		return nil
	}

	item, err := s.items.GetByID(ctx, scrap.ItemID)
	if err != nil {
		return err
	}

	rate := fiscal.ReportingRate(item.TaxCategory)
	vat := item.ListPrice.Mul(rate).Div(decimal.NewFromInt(100)).Round(4)
	total := item.ListPrice.Add(vat)

	now := s.now().In(s.loc)
	custTpin := (*string)(nil)
	custNm := (*string)(nil)

	payload := &gateway.StockItems{
		Tpin:        s.company.TPIN,
		BhfID:       s.company.BranchID,
		SarNo:       gateway.StockSarNo(now),
		OrgSarNo:    0,
		RegTyCd:     zra.RegistrationTypeManual,
		CustTpin:    custTpin,
		CustNm:      custNm,
		CustBhfID:   zra.DefaultBranchID,
		SarTyCd:     zra.StockScrap,
		OcrnDt:      zra.FormatDate(scrap.ScrapDate),
		TotItemCnt:  1,
		TotTaxblAmt: item.ListPrice,
		TotTaxAmt:   vat,
		TotAmt:      total,
		Remark:      "Scrap product",
		RegrID:      user.ID,
		RegrNm:      user.Name,
		ModrNm:      user.Name,
		ModrID:      user.ID,
		ItemList: []gateway.LineItem{{
			ItemSeq:       1,
			ItemCd:        item.ItemCode,
			ItemClsCd:     item.ClassificationCode,
			ItemNm:        item.Name,
			Bcd:           item.Barcode,
			PkgUnitCd:     item.PackagingUnitCode,
			Pkg:           scrap.Quantity,
			QtyUnitCd:     item.QuantityUnitCode,
			Qty:           scrap.Quantity,
			Prc:           item.ListPrice,
			SplyAmt:       item.ListPrice,
			TaxblAmt:      item.ListPrice,
			VatCatCd:      item.TaxCategory,
			IplCatCd:      "IPL1",
			TlCatCd:       "TL",
			ExciseTxCatCd: optionalString("EXEEG"),
			VatAmt:        vat,
			IplAmt:        vat,
			TlAmt:         vat,
			ExciseTxAmt:   vat,
			TaxAmt:        vat,
			TotAmt:        total,
		}},
	}

	if err := stockCallResult(s.gw.SubmitStockItems(ctx, payload)); err != nil {
		return fmt.Errorf("report scrap movement: %w", err)
	}

	onHand, err := s.stock.OnHand(ctx, item.ID)
	if err != nil {
		return err
	}

	master := gateway.BuildStockMaster(s.company, user, []gateway.StockBalance{{
		ItemCd: item.ItemCode,
		RsdQty: gateway.ResidualQuantity(onHand, scrap.Quantity, false),
	}})
	if err := stockCallResult(s.gw.SubmitStockMaster(ctx, master)); err != nil {
		return fmt.Errorf("report scrap residual: %w", err)
	}

	if _, err := s.stock.ApplyDelta(ctx, item.ID, scrap.Quantity.Neg()); err != nil {
		return err
	}
	return s.scraps.MarkDone(ctx, scrapID)
}

func optionalString(v string) *string { return &v }
