package fiscal

import (
	"github.com/shopspring/decimal"
	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

// Tax category codes accepted by the gateway. Every document line must map to
// exactly one of these; the header carries one taxable/rate/tax triple per
// category.
const (
	CategoryA     = "A"     // standard rated 16%
	CategoryB     = "B"     // standard rated 16% (MTV)
	CategoryC1    = "C1"    // zero rated exports
	CategoryC2    = "C2"    // zero rated privileged persons
	CategoryC3    = "C3"    // zero rated by nature
	CategoryD     = "D"     // zero rated
	CategoryE     = "E"     // exempt
	CategoryF     = "F"     // reduced rate 10%
	CategoryRVAT  = "RVAT"  // reverse VAT
	CategoryIpl1  = "Ipl1"  // insurance premium levy 5%
	CategoryIpl2  = "Ipl2"  // insurance premium levy exempt
	CategoryTl    = "Tl"    // tourism levy 1.5%
	CategoryEcm   = "Ecm"   // excise on coal 5%
	CategoryExeeg = "Exeeg" // excise on electricity 3%
	CategoryTot   = "Tot"
)

// reportingRates are the jurisdiction constants written into the header
// taxRt* fields. These are fixed by the gateway contract and deliberately
// independent of the rate configured on the ERP tax record, which drives the
// actual arithmetic.
var reportingRates = map[string]decimal.Decimal{
	CategoryA:     decimal.NewFromInt(16),
	CategoryB:     decimal.NewFromInt(16),
	CategoryF:     decimal.NewFromInt(10),
	CategoryRVAT:  decimal.NewFromInt(16),
	CategoryIpl1:  decimal.NewFromInt(5),
	CategoryTl:    decimal.RequireFromString("1.5"),
	CategoryEcm:   decimal.NewFromInt(5),
	CategoryExeeg: decimal.NewFromInt(3),
}

// Categories lists every reportable category in header order.
var Categories = []string{
	CategoryA, CategoryB, CategoryC1, CategoryC2, CategoryC3, CategoryD,
	CategoryRVAT, CategoryE, CategoryF, CategoryIpl1, CategoryIpl2,
	CategoryTl, CategoryEcm, CategoryExeeg,
}

// ReportingRate returns the fixed header rate for a category, zero for
// categories with no published rate. Matching is exact: "C1" never matches
// "C".
func ReportingRate(category string) decimal.Decimal {
	if r, ok := reportingRates[category]; ok {
		return r
	}
	return decimal.Zero
}

var hundred = decimal.NewFromInt(100)

// NetSupply is the discount-adjusted gross amount of a line: quantity times
// unit price, minus the discount amount rounded to 2 decimals.
func NetSupply(line entity.InvoiceLine) decimal.Decimal {
	supply := line.Quantity.Mul(line.UnitPrice)
	discount := supply.Mul(line.DiscountPct).Div(hundred).Round(2)
	return supply.Sub(discount)
}

// DiscountAmount is the 2-decimal rounded discount applied to a line.
func DiscountAmount(line entity.InvoiceLine) decimal.Decimal {
	return line.Quantity.Mul(line.UnitPrice).Mul(line.DiscountPct).Div(hundred).Round(2)
}

// lineTaxable extracts the tax-exclusive base from a tax-inclusive net
// supply. Returned unrounded so the caller controls where rounding happens.
func lineTaxable(net, rate decimal.Decimal) decimal.Decimal {
	return net.Div(decimal.NewFromInt(1).Add(rate.Div(hundred)))
}

// TaxableAmount sums the tax-exclusive base of every line whose tax category
// equals the given category, rounded to 4 decimals.
func TaxableAmount(lines []entity.InvoiceLine, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		if line.Tax == nil || line.Tax.Category != category {
			continue
		}
		sum = sum.Add(lineTaxable(NetSupply(line), line.Tax.Rate))
	}
	return sum.Round(4)
}

// TaxAmount sums the tax portion of every line in the category, rounded to 4
// decimals. For each line, taxable plus tax equals the net supply within
// 0.0001.
func TaxAmount(lines []entity.InvoiceLine, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		if line.Tax == nil || line.Tax.Category != category {
			continue
		}
		taxable := lineTaxable(NetSupply(line), line.Tax.Rate)
		sum = sum.Add(taxable.Mul(line.Tax.Rate).Div(hundred))
	}
	return sum.Round(4)
}

// LineAmounts is the full monetary breakdown of one line as it appears on a
// gateway item entry.
type LineAmounts struct {
	Supply   decimal.Decimal // qty * price, before discount
	Discount decimal.Decimal
	Net      decimal.Decimal // supply - discount
	Taxable  decimal.Decimal // tax-exclusive base, 4dp
	Tax      decimal.Decimal // 4dp
}

// ComputeLine produces the per-line amounts for a single line. Rate comes
// from the ERP tax record, not the reporting constants.
func ComputeLine(line entity.InvoiceLine) LineAmounts {
	supply := line.Quantity.Mul(line.UnitPrice)
	discount := supply.Mul(line.DiscountPct).Div(hundred).Round(2)
	net := supply.Sub(discount)

	rate := decimal.Zero
	if line.Tax != nil {
		rate = line.Tax.Rate
	}
	taxable := lineTaxable(net, rate)

	return LineAmounts{
		Supply:   supply,
		Discount: discount,
		Net:      net,
		Taxable:  taxable.Round(4),
		Tax:      taxable.Mul(rate).Div(hundred).Round(4),
	}
}
