package fiscal

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/internal/domain"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

func TestRegisterItem_GeneratesCode(t *testing.T) {
	env := newTestEnv()
	item := &entity.Item{
		ID:                 "itm9",
		Name:               "Chibwantu 500ml",
		ClassificationCode: "50202306",
		ItemType:           entity.ItemTypeFinished,
		PackagingUnitCode:  "NT",
		QuantityUnitCode:   "BA",
		OriginCountryCode:  "ZM",
		TaxCategory:        "A",
		UseYn:              true,
	}

	require.NoError(t, env.svc.RegisterItem(context.Background(), item, testUser()))

	assert.Equal(t, "ZM2NTBA0000001", item.ItemCode)
	require.Len(t, env.items.created, 1)
	require.Len(t, env.gw.itemRegs, 1)
	assert.Equal(t, "ZM2NTBA0000001", env.gw.itemRegs[0].ItemCd)
	assert.Equal(t, "Y", env.gw.itemRegs[0].UseYn)
	assert.Empty(t, env.gw.itemRegs[0].IplCatCd, "levy categories only go on updates")
}

func TestRegisterItem_CollisionAdvancesSequence(t *testing.T) {
	env := newTestEnv()
	env.items.taken["ISW2NTBA0000001"] = true
	item := &entity.Item{
		ID:                "itm9",
		Name:              "Chibwantu 500ml",
		ItemType:          entity.ItemTypeFinished,
		PackagingUnitCode: "NT",
		QuantityUnitCode:  "BA",
	}

	require.NoError(t, env.svc.RegisterItem(context.Background(), item, testUser()))
	assert.Equal(t, "ISW2NTBA0000002", item.ItemCode, "taken code skipped, next sequence used")
}

func TestRegisterItem_RejectsDuplicateUserCode(t *testing.T) {
	env := newTestEnv()
	env.items.taken["ZM2NTBA0000042"] = true
	item := &entity.Item{ID: "itm9", ItemCode: "ZM2NTBA0000042"}

	err := env.svc.RegisterItem(context.Background(), item, testUser())
	require.ErrorIs(t, err, domain.ErrDuplicateItemCode)
	assert.Empty(t, env.items.created)
	assert.Empty(t, env.gw.itemRegs)
}

func TestUpdateItem_SendsLevyCategories(t *testing.T) {
	env := newTestEnv()
	item := stockableItem()
	env.items.byID[item.ID] = item

	require.NoError(t, env.svc.UpdateItem(context.Background(), item, testUser()))

	require.Len(t, env.gw.itemUpds, 1)
	upd := env.gw.itemUpds[0]
	assert.Equal(t, "IPL1", upd.IplCatCd)
	assert.Equal(t, "TL", upd.TlCatCd)
	assert.Equal(t, "EXEEG", upd.ExciseTxCatCd)
}

func TestSyncItemComposition(t *testing.T) {
	env := newTestEnv()
	parent := stockableItem()
	component := stockableItem()
	component.ID = "itm2"
	component.ItemCode = "ZM1NTBA0000002"
	env.items.byID[parent.ID] = parent
	env.items.byID[component.ID] = component
	env.items.bom[parent.ID] = []entity.BOMLine{{ComponentItemID: "itm2", Quantity: decimal.NewFromInt(3)}}

	require.NoError(t, env.svc.SyncItemComposition(context.Background(), parent.ID, testUser()))

	require.Len(t, env.gw.compositions, 1)
	comp := env.gw.compositions[0]
	assert.Equal(t, "ZM2NTBA0000001", comp.ItemCd)
	assert.Equal(t, "ZM1NTBA0000002", comp.CpstItemCd)
	assert.True(t, comp.CpstQty.Equal(decimal.NewFromInt(3)))
}

func TestSetItemQuantity(t *testing.T) {
	env := newTestEnv()
	env.items.byID["itm1"] = stockableItem()
	env.stock.levels["itm1"] = decimal.NewFromInt(12)

	require.NoError(t, env.svc.SetItemQuantity(context.Background(), "itm1", decimal.NewFromInt(30), testUser()))

	require.Len(t, env.gw.stockMasters, 1)
	bal := env.gw.stockMasters[0].StockItemList[0]
	assert.Equal(t, "ZM2NTBA0000001", bal.ItemCd)
	assert.True(t, bal.RsdQty.Equal(decimal.NewFromInt(30)), "declared residual is the new absolute quantity")
	assert.True(t, env.stock.levels["itm1"].Equal(decimal.NewFromInt(30)), "ledger moves to the new quantity")
}

func TestSetItemQuantity_RejectsNegative(t *testing.T) {
	env := newTestEnv()
	env.items.byID["itm1"] = stockableItem()

	err := env.svc.SetItemQuantity(context.Background(), "itm1", decimal.NewFromInt(-1), testUser())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.gw.stockMasters)
}
