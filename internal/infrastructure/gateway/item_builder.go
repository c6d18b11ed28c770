package gateway

import (
	"github.com/shopspring/decimal"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// Levy categories reported on item updates. The legacy integration always
// declares the item under these three buckets; the gateway ignores the ones
// that do not apply to the item class.
const (
	levyCategoryIpl    = "IPL1"
	levyCategoryTl     = "TL"
	levyCategoryExcise = "EXEEG"
)

// BuildItemRegistration produces the item save/update payload. forUpdate
// adds the levy category trio the update endpoint requires.
func BuildItemRegistration(item *entity.Item, company entity.Company, user entity.User, forUpdate bool) *ItemRegistration {
	useYn := "N"
	if item.UseYn {
		useYn = "Y"
	}

	p := &ItemRegistration{
		Tpin:        company.TPIN,
		BhfID:       company.BranchID,
		ItemCd:      item.ItemCode,
		ItemClsCd:   item.ClassificationCode,
		ItemTyCd:    item.ItemType,
		ItemNm:      item.Name,
		ItemStdNm:   item.Name,
		OrgnNatCd:   item.OriginCountryCode,
		PkgUnitCd:   item.PackagingUnitCode,
		QtyUnitCd:   item.QuantityUnitCode,
		VatCatCd:    item.TaxCategory,
		DftPrc:      item.ListPrice,
		IsrcAplcbYn: "N",
		UseYn:       useYn,
		RegrNm:      user.Name,
		RegrID:      user.ID,
		ModrNm:      user.Name,
		ModrID:      user.ID,
	}

	if forUpdate {
		p.IplCatCd = levyCategoryIpl
		p.TlCatCd = levyCategoryTl
		p.ExciseTxCatCd = levyCategoryExcise
	}
	return p
}

// BuildItemComposition produces the bill-of-materials declaration for one
// parent/component pair.
func BuildItemComposition(parent, component *entity.Item, qty decimal.Decimal, company entity.Company, user entity.User) *ItemComposition {
	return &ItemComposition{
		Tpin:       company.TPIN,
		BhfID:      company.BranchID,
		ItemCd:     parent.ItemCode,
		CpstItemCd: component.ItemCode,
		CpstQty:    qty,
		RegrID:     user.ID,
		RegrNm:     user.Name,
	}
}
