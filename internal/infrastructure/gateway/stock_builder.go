package gateway

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

// StockSarNo derives the stock adjustment report number from the occurrence
// instant: MMddHHmmss as an integer, matching the gateway's expectation of a
// unique-enough numeric identifier per movement.
func StockSarNo(at time.Time) int64 {
	n, _ := strconv.ParseInt(at.Format("0102150405"), 10, 64)
	return n
}

// BuildStockItems produces the stock-IO payload for the stockable lines of a
// sales-family document. The caller picks the sarTyCd for the movement kind
// and filters service lines out beforehand.
func BuildStockItems(in DocumentInput, sarTyCd, remark string) *StockItems {
	items := buildLineItems(in.Lines)
	taxable, tax, total := sumLineTotals(items)

	custTpin := customerTPIN(in)
	custNm := customerName(in)

	return &StockItems{
		Tpin:        in.Company.TPIN,
		BhfID:       in.Company.BranchID,
		SarNo:       StockSarNo(in.Now),
		OrgSarNo:    0,
		RegTyCd:     zra.RegistrationTypeManual,
		CustTpin:    &custTpin,
		CustNm:      &custNm,
		CustBhfID:   zra.DefaultBranchID,
		SarTyCd:     sarTyCd,
		OcrnDt:      zra.FormatDate(in.Invoice.InvoiceDate),
		TotItemCnt:  len(in.Lines),
		TotTaxblAmt: taxable,
		TotTaxAmt:   tax,
		TotAmt:      total,
		Remark:      remark,
		RegrID:      in.User.ID,
		RegrNm:      in.User.Name,
		ModrNm:      in.User.Name,
		ModrID:      in.User.ID,
		ItemList:    items,
	}
}

// ResidualQuantity computes the post-movement on-hand quantity reported on
// the stock master. onHand is read before the ledger is mutated, so outgoing
// movements subtract and incoming ones add. The gateway rejects negative
// residuals, so an outgoing movement exceeding on-hand reports zero.
func ResidualQuantity(onHand, qty decimal.Decimal, incoming bool) decimal.Decimal {
	if incoming {
		return onHand.Add(qty)
	}
	rsd := onHand.Sub(qty)
	if rsd.IsNegative() {
		return decimal.Zero
	}
	return rsd
}

// BuildStockMaster produces the residual-quantity declaration for a set of
// already computed balances.
func BuildStockMaster(company entity.Company, user entity.User, balances []StockBalance) *StockMaster {
	return &StockMaster{
		Tpin:          company.TPIN,
		BhfID:         company.BranchID,
		RegrID:        user.ID,
		RegrNm:        user.Name,
		ModrNm:        user.Name,
		ModrID:        user.ID,
		StockItemList: balances,
	}
}
