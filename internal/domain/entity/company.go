package entity

// Company is the reporting taxpayer's fiscal identity. Loaded from
// configuration; these values go verbatim into every envelope header.
type Company struct {
	Name     string
	TPIN     string
	BranchID string // bhfId
	SdcID    string // orgSdcId on credit/debit notes
	Currency string // base currency, ZMW
}

// User is the acting operator. The name is reported as registrar/modifier
// (regrId/regrNm/modrId/modrNm) on gateway payloads.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
}
