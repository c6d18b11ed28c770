package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Smart Invoice product types (itemTyCd).
const (
	ItemTypeRawMaterial = "1"
	ItemTypeFinished    = "2"
	ItemTypeService     = "3"
)

// Item is the item master record: an ERP product with its fiscal codes.
// ItemCode is unique across all items; it is either user-supplied or
// generated from the code sequence.
type Item struct {
	ID   string
	Name string

	ItemCode            string
	ClassificationCode  string // itemClsCd from the ZRA classification catalogue
	ClassificationLevel int
	TaxTypeCode         string
	ItemType            string // ItemTypeRawMaterial | ItemTypeFinished | ItemTypeService
	PackagingUnitCode   string
	QuantityUnitCode    string
	OriginCountryCode   string
	Barcode             string

	ListPrice   decimal.Decimal
	TaxCategory string // default vatCatCd for lines of this item
	UseYn       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stockable reports whether movements of this item are reported to the stock
// endpoints. Service items appear on sales payloads only.
func (it *Item) Stockable() bool {
	return it.ItemType != ItemTypeService
}

// BOMLine is one component of an item composition (bill of materials).
type BOMLine struct {
	ComponentItemID string
	Quantity        decimal.Decimal
}
