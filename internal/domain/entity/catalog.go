package entity

// ItemClassification is one UNSPSC entry of the authority's item catalogue.
// Items reference Code as their classification_code.
type ItemClassification struct {
	Code        string
	Name        string
	Level       int
	TaxTypeCode string
	MajorTarget bool
}

// CommonCode is one detail entry of the shared code catalogue. ClassCode
// groups the entries: 10 quantity units, 17 packaging units, 05 countries.
type CommonCode struct {
	ClassCode string
	ClassName string
	Code      string
	Name      string
}
