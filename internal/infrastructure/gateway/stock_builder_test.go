package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
	"github.com/zamretail/smartinvoice/pkg/zra"
)

func TestBuildStockItems(t *testing.T) {
	in := testInput()
	payload := BuildStockItems(in, zra.StockOutNormal, "Normal Sale")

	assert.Equal(t, "1234567890", payload.Tpin)
	assert.Equal(t, zra.RegistrationTypeManual, payload.RegTyCd)
	assert.Equal(t, zra.StockOutNormal, payload.SarTyCd)
	assert.Equal(t, int64(0), payload.OrgSarNo)
	assert.Equal(t, "000", payload.CustBhfID)
	assert.Equal(t, "20250814", payload.OcrnDt)
	assert.Equal(t, "Normal Sale", payload.Remark)
	assert.Equal(t, 1, payload.TotItemCnt)
	assert.Len(t, payload.ItemList, 1)

	// Registrar identity is the acting operator on both slots.
	assert.Equal(t, "7", payload.RegrID)
	assert.Equal(t, "Chileshe", payload.RegrNm)
	assert.Equal(t, "7", payload.ModrID)
	assert.Equal(t, "Chileshe", payload.ModrNm)

	// Aug 14 09:30:05 -> MMddHHmmss.
	assert.Equal(t, int64(814093005), payload.SarNo)
}

func TestResidualQuantity(t *testing.T) {
	onHand := decimal.NewFromInt(20)
	qty := decimal.NewFromInt(5)

	// On-hand is read before the ledger is mutated: a sale of 5 from 20
	// reports 15, a credit return of 5 onto 20 reports 25.
	assert.Equal(t, "15", ResidualQuantity(onHand, qty, false).String())
	assert.Equal(t, "25", ResidualQuantity(onHand, qty, true).String())

	// An outgoing movement larger than on-hand reports zero, never a
	// negative residual.
	assert.Equal(t, "0", ResidualQuantity(qty, onHand, false).String())
}

func TestBuildStockMaster(t *testing.T) {
	company := entity.Company{TPIN: "1234567890", BranchID: "000"}
	user := entity.User{ID: "7", Name: "Chileshe"}
	balances := []StockBalance{
		{ItemCd: "ZM2NTBA0000001", RsdQty: decimal.NewFromInt(15)},
		{ItemCd: "ZM2NTBA0000002", RsdQty: decimal.NewFromInt(40)},
	}

	payload := BuildStockMaster(company, user, balances)

	assert.Equal(t, "1234567890", payload.Tpin)
	assert.Equal(t, "7", payload.RegrID)
	assert.Equal(t, "Chileshe", payload.RegrNm)
	assert.Len(t, payload.StockItemList, 2)
	assert.Equal(t, "15", payload.StockItemList[0].RsdQty.String())
}
