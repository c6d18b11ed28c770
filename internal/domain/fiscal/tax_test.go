package fiscal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamretail/smartinvoice/internal/domain/entity"
)

func line(qty, price, discount, rate string, category string) entity.InvoiceLine {
	return entity.InvoiceLine{
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
		DiscountPct: decimal.RequireFromString(discount),
		Tax: &entity.Tax{
			Category: category,
			Rate:     decimal.RequireFromString(rate),
		},
	}
}

func TestComputeLine_StandardRatedWithDiscount(t *testing.T) {
	// qty=2, price=100, 10% discount, 16% VAT.
	amounts := ComputeLine(line("2", "100", "10", "16", CategoryA))

	assert.True(t, amounts.Supply.Equal(decimal.NewFromInt(200)), "supply = %s", amounts.Supply)
	assert.True(t, amounts.Discount.Equal(decimal.NewFromInt(20)), "discount = %s", amounts.Discount)
	assert.True(t, amounts.Net.Equal(decimal.NewFromInt(180)), "net = %s", amounts.Net)
	assert.Equal(t, "155.1724", amounts.Taxable.StringFixed(4))
	assert.Equal(t, "24.8276", amounts.Tax.StringFixed(4))
}

func TestComputeLine_TaxablePlusTaxEqualsNet(t *testing.T) {
	cases := []entity.InvoiceLine{
		line("2", "100", "10", "16", CategoryA),
		line("3", "33.33", "0", "16", CategoryA),
		line("1", "999.99", "5", "10", CategoryF),
		line("7", "14.5", "12.5", "16", CategoryB),
		line("2.5", "80", "0", "1.5", CategoryTl),
	}
	tolerance := decimal.RequireFromString("0.0001")

	for _, l := range cases {
		amounts := ComputeLine(l)
		diff := amounts.Net.Sub(amounts.Taxable.Add(amounts.Tax)).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"taxable %s + tax %s drifted %s from net %s",
			amounts.Taxable, amounts.Tax, diff, amounts.Net)
	}
}

func TestComputeLine_ZeroRated(t *testing.T) {
	amounts := ComputeLine(line("4", "50", "0", "0", CategoryC1))

	assert.Equal(t, "200.0000", amounts.Taxable.StringFixed(4))
	assert.Equal(t, "0.0000", amounts.Tax.StringFixed(4))
}

func TestComputeLine_NoTaxAssigned(t *testing.T) {
	amounts := ComputeLine(entity.InvoiceLine{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(100),
	})

	assert.Equal(t, "100.0000", amounts.Taxable.StringFixed(4))
	assert.Equal(t, "0.0000", amounts.Tax.StringFixed(4))
}

func TestTaxableAmount_FiltersByExactCategory(t *testing.T) {
	lines := []entity.InvoiceLine{
		line("2", "100", "10", "16", CategoryA),
		line("1", "116", "0", "16", CategoryA),
		line("1", "50", "0", "0", CategoryC1),
	}

	// Two A lines: 180/1.16 + 116/1.16 = 155.1724... + 100.
	assert.Equal(t, "255.1724", TaxableAmount(lines, CategoryA).StringFixed(4))
	assert.Equal(t, "40.8276", TaxAmount(lines, CategoryA).StringFixed(4))

	// C1 must not pick up C2/C3 lines and vice versa.
	assert.Equal(t, "50.0000", TaxableAmount(lines, CategoryC1).StringFixed(4))
	assert.True(t, TaxableAmount(lines, "C").IsZero())
	assert.True(t, TaxableAmount(lines, CategoryC2).IsZero())
}

func TestTaxableAmount_SkipsLinesWithoutTax(t *testing.T) {
	lines := []entity.InvoiceLine{
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)},
	}
	assert.True(t, TaxableAmount(lines, CategoryA).IsZero())
	assert.True(t, TaxAmount(lines, CategoryA).IsZero())
}

func TestReportingRate(t *testing.T) {
	require.Equal(t, "16", ReportingRate(CategoryA).String())
	require.Equal(t, "16", ReportingRate(CategoryB).String())
	require.Equal(t, "10", ReportingRate(CategoryF).String())
	require.Equal(t, "16", ReportingRate(CategoryRVAT).String())
	require.Equal(t, "5", ReportingRate(CategoryIpl1).String())
	require.Equal(t, "1.5", ReportingRate(CategoryTl).String())
	require.Equal(t, "5", ReportingRate(CategoryEcm).String())
	require.Equal(t, "3", ReportingRate(CategoryExeeg).String())

	// Everything else reports zero.
	for _, c := range []string{CategoryC1, CategoryC2, CategoryC3, CategoryD, CategoryE, CategoryIpl2, "unknown"} {
		assert.True(t, ReportingRate(c).IsZero(), "category %s", c)
	}
}

func TestComputeLine_IsDeterministic(t *testing.T) {
	l := line("2", "100", "10", "16", CategoryA)
	first := ComputeLine(l)
	second := ComputeLine(l)

	assert.True(t, first.Taxable.Equal(second.Taxable))
	assert.True(t, first.Tax.Equal(second.Tax))
}
