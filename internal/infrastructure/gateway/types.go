package gateway

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Response is the envelope every VSDC endpoint returns. Data is left raw
// because its shape depends on the endpoint.
type Response struct {
	ResultCd  string          `json:"resultCd"`
	ResultMsg string          `json:"resultMsg"`
	ResultDt  string          `json:"resultDt"`
	Data      json.RawMessage `json:"data"`
}

// ReceiptResult is the data block returned by a successful sales, credit note
// or debit note submission. Every field is written back onto the source
// document.
type ReceiptResult struct {
	RcptNo           int64  `json:"rcptNo"`
	IntrlData        string `json:"intrlData"`
	RcptSign         string `json:"rcptSign"`
	VsdcRcptPbctDate string `json:"vsdcRcptPbctDate"`
	SdcID            string `json:"sdcId"`
	MrcNo            string `json:"mrcNo"`
	QRCodeURL        string `json:"qrCodeUrl"`
}

// LineItem is one entry of a sales document's itemList. The insurance and
// excise columns are always reported zero; the gateway still requires them.
type LineItem struct {
	ItemSeq        int             `json:"itemSeq"`
	ItemCd         string          `json:"itemCd"`
	ItemClsCd      string          `json:"itemClsCd"`
	ItemNm         string          `json:"itemNm"`
	Bcd            string          `json:"bcd"`
	PkgUnitCd      string          `json:"pkgUnitCd"`
	Pkg            decimal.Decimal `json:"pkg"`
	QtyUnitCd      string          `json:"qtyUnitCd"`
	Qty            decimal.Decimal `json:"qty"`
	ItemExprDt     *string         `json:"itemExprDt"`
	Prc            decimal.Decimal `json:"prc"`
	SplyAmt        decimal.Decimal `json:"splyAmt"`
	DcRt           decimal.Decimal `json:"dcRt"`
	DcAmt          decimal.Decimal `json:"dcAmt"`
	IsrccCd        string          `json:"isrccCd"`
	IsrccNm        string          `json:"isrccNm"`
	IsrcRt         decimal.Decimal `json:"isrcRt"`
	IsrcAmt        decimal.Decimal `json:"isrcAmt"`
	TotDcAmt       decimal.Decimal `json:"totDcAmt"`
	VatCatCd       string          `json:"vatCatCd"`
	IplCatCd       string          `json:"iplCatCd,omitempty"`
	TlCatCd        string          `json:"tlCatCd,omitempty"`
	ExciseTxCatCd  *string         `json:"exciseTxCatCd"`
	VatAmt         decimal.Decimal `json:"vatAmt"`
	TaxblAmt       decimal.Decimal `json:"taxblAmt"`
	IplAmt         decimal.Decimal `json:"iplAmt"`
	TlAmt          decimal.Decimal `json:"tlAmt"`
	ExciseTaxblAmt decimal.Decimal `json:"exciseTaxblAmt"`
	VatTaxblAmt    decimal.Decimal `json:"vatTaxblAmt"`
	ExciseTxAmt    decimal.Decimal `json:"exciseTxAmt"`
	TaxAmt         decimal.Decimal `json:"taxAmt"`
	TotAmt         decimal.Decimal `json:"totAmt"`
}

// CategoryAmounts carries one monetary value per tax category as the header
// grid expects it. The C bucket exists on the amount grids but has no
// published rate, so the rate grid omits it.
type CategoryAmounts struct {
	A     decimal.Decimal
	B     decimal.Decimal
	C     decimal.Decimal
	C1    decimal.Decimal
	C2    decimal.Decimal
	C3    decimal.Decimal
	D     decimal.Decimal
	Rvat  decimal.Decimal
	E     decimal.Decimal
	F     decimal.Decimal
	Ipl1  decimal.Decimal
	Ipl2  decimal.Decimal
	Tl    decimal.Decimal
	Ecm   decimal.Decimal
	Exeeg decimal.Decimal
	Tot   decimal.Decimal
}

// SalesInvoice is the wire shape posted to the saveSales endpoint for
// invoices, credit notes and debit notes. Field order follows the gateway
// documentation; the JSON marshaller preserves it.
type SalesInvoice struct {
	Tpin     string `json:"tpin"`
	BhfID    string `json:"bhfId"`
	OrgSdcID string `json:"orgSdcId,omitempty"`
	// OrgInvcNo is zero for sales and the original receipt number for
	// credit and debit notes.
	OrgInvcNo   int64   `json:"orgInvcNo"`
	CisInvcNo   string  `json:"cisInvcNo"`
	CustTpin    string  `json:"custTpin"`
	CustNm      string  `json:"custNm"`
	SalesTyCd   string  `json:"salesTyCd"`
	RcptTyCd    string  `json:"rcptTyCd"`
	PmtTyCd     string  `json:"pmtTyCd"`
	SalesSttsCd string  `json:"salesSttsCd"`
	CfmDt       string  `json:"cfmDt"`
	SalesDt     string  `json:"salesDt"`
	StockRlsDt  *string `json:"stockRlsDt"`
	CnclReqDt   *string `json:"cnclReqDt"`
	CnclDt      *string `json:"cnclDt"`
	RfdDt       *string `json:"rfdDt"`
	RfdRsnCd    string  `json:"rfdRsnCd"`
	TotItemCnt  int     `json:"totItemCnt"`

	TaxblAmtA     decimal.Decimal `json:"taxblAmtA"`
	TaxblAmtB     decimal.Decimal `json:"taxblAmtB"`
	TaxblAmtC     decimal.Decimal `json:"taxblAmtC"`
	TaxblAmtC1    decimal.Decimal `json:"taxblAmtC1"`
	TaxblAmtC2    decimal.Decimal `json:"taxblAmtC2"`
	TaxblAmtC3    decimal.Decimal `json:"taxblAmtC3"`
	TaxblAmtD     decimal.Decimal `json:"taxblAmtD"`
	TaxblAmtRvat  decimal.Decimal `json:"taxblAmtRvat"`
	TaxblAmtE     decimal.Decimal `json:"taxblAmtE"`
	TaxblAmtF     decimal.Decimal `json:"taxblAmtF"`
	TaxblAmtIpl1  decimal.Decimal `json:"taxblAmtIpl1"`
	TaxblAmtIpl2  decimal.Decimal `json:"taxblAmtIpl2"`
	TaxblAmtTl    decimal.Decimal `json:"taxblAmtTl"`
	TaxblAmtEcm   decimal.Decimal `json:"taxblAmtEcm"`
	TaxblAmtExeeg decimal.Decimal `json:"taxblAmtExeeg"`
	TaxblAmtTot   decimal.Decimal `json:"taxblAmtTot"`

	TaxRtA     decimal.Decimal `json:"taxRtA"`
	TaxRtB     decimal.Decimal `json:"taxRtB"`
	TaxRtC1    decimal.Decimal `json:"taxRtC1"`
	TaxRtC2    decimal.Decimal `json:"taxRtC2"`
	TaxRtC3    decimal.Decimal `json:"taxRtC3"`
	TaxRtD     decimal.Decimal `json:"taxRtD"`
	TaxRtRvat  decimal.Decimal `json:"taxRtRvat"`
	TaxRtE     decimal.Decimal `json:"taxRtE"`
	TaxRtF     decimal.Decimal `json:"taxRtF"`
	TaxRtIpl1  decimal.Decimal `json:"taxRtIpl1"`
	TaxRtIpl2  decimal.Decimal `json:"taxRtIpl2"`
	TaxRtTl    decimal.Decimal `json:"taxRtTl"`
	TaxRtEcm   decimal.Decimal `json:"taxRtEcm"`
	TaxRtExeeg decimal.Decimal `json:"taxRtExeeg"`
	TaxRtTot   decimal.Decimal `json:"taxRtTot"`

	TaxAmtA     decimal.Decimal `json:"taxAmtA"`
	TaxAmtB     decimal.Decimal `json:"taxAmtB"`
	TaxAmtC     decimal.Decimal `json:"taxAmtC"`
	TaxAmtC1    decimal.Decimal `json:"taxAmtC1"`
	TaxAmtC2    decimal.Decimal `json:"taxAmtC2"`
	TaxAmtC3    decimal.Decimal `json:"taxAmtC3"`
	TaxAmtD     decimal.Decimal `json:"taxAmtD"`
	TaxAmtRvat  decimal.Decimal `json:"taxAmtRvat"`
	TaxAmtE     decimal.Decimal `json:"taxAmtE"`
	TaxAmtF     decimal.Decimal `json:"taxAmtF"`
	TaxAmtIpl1  decimal.Decimal `json:"taxAmtIpl1"`
	TaxAmtIpl2  decimal.Decimal `json:"taxAmtIpl2"`
	TaxAmtTl    decimal.Decimal `json:"taxAmtTl"`
	TaxAmtEcm   decimal.Decimal `json:"taxAmtEcm"`
	TaxAmtExeeg decimal.Decimal `json:"taxAmtExeeg"`
	TaxAmtTot   decimal.Decimal `json:"taxAmtTot"`

	TotTaxblAmt decimal.Decimal `json:"totTaxblAmt"`
	TotTaxAmt   decimal.Decimal `json:"totTaxAmt"`
	TotAmt      decimal.Decimal `json:"totAmt"`

	PrchrAcptcYn     string  `json:"prchrAcptcYn"`
	Remark           string  `json:"remark"`
	RegrID           string  `json:"regrId"`
	RegrNm           string  `json:"regrNm"`
	ModrID           string  `json:"modrId"`
	ModrNm           string  `json:"modrNm"`
	SaleCtyCd        string  `json:"saleCtyCd"`
	LpoNumber        *string `json:"lpoNumber"`
	CurrencyTyCd     string  `json:"currencyTyCd"`
	ExchangeRt       string  `json:"exchangeRt"`
	DestnCountryCd   *string `json:"destnCountryCd"`
	DbtRsnCd         string  `json:"dbtRsnCd"`
	InvcAdjustReason string  `json:"invcAdjustReason"`

	ItemList []LineItem `json:"itemList"`
}

// StockItems is the wire shape posted to the stock-IO endpoint: one physical
// movement with its lines.
type StockItems struct {
	Tpin        string          `json:"tpin"`
	BhfID       string          `json:"bhfId"`
	SarNo       int64           `json:"sarNo"`
	OrgSarNo    int64           `json:"orgSarNo"`
	RegTyCd     string          `json:"regTyCd"`
	CustTpin    *string         `json:"custTpin"`
	CustNm      *string         `json:"custNm"`
	CustBhfID   string          `json:"custBhfId"`
	SarTyCd     string          `json:"sarTyCd"`
	OcrnDt      string          `json:"ocrnDt"`
	TotItemCnt  int             `json:"totItemCnt"`
	TotTaxblAmt decimal.Decimal `json:"totTaxblAmt"`
	TotTaxAmt   decimal.Decimal `json:"totTaxAmt"`
	TotAmt      decimal.Decimal `json:"totAmt"`
	Remark      string          `json:"remark"`
	RegrID      string          `json:"regrId"`
	RegrNm      string          `json:"regrNm"`
	ModrNm      string          `json:"modrNm"`
	ModrID      string          `json:"modrId"`
	ItemList    []LineItem      `json:"itemList"`
}

// StockBalance is one itemCd with its post-movement residual quantity.
type StockBalance struct {
	ItemCd string          `json:"itemCd"`
	RsdQty decimal.Decimal `json:"rsdQty"`
}

// StockMaster declares the residual on-hand quantities after a movement.
type StockMaster struct {
	Tpin          string         `json:"tpin"`
	BhfID         string         `json:"bhfId"`
	RegrID        string         `json:"regrId"`
	RegrNm        string         `json:"regrNm"`
	ModrNm        string         `json:"modrNm"`
	ModrID        string         `json:"modrId"`
	StockItemList []StockBalance `json:"stockItemList"`
}

// ItemRegistration is the wire shape for item create and update. The levy
// category trio is only sent on updates.
type ItemRegistration struct {
	Tpin          string          `json:"tpin"`
	BhfID         string          `json:"bhfId"`
	ItemCd        string          `json:"itemCd"`
	ItemClsCd     string          `json:"itemClsCd"`
	ItemTyCd      string          `json:"itemTyCd"`
	ItemNm        string          `json:"itemNm"`
	ItemStdNm     string          `json:"itemStdNm"`
	OrgnNatCd     string          `json:"orgnNatCd"`
	PkgUnitCd     string          `json:"pkgUnitCd"`
	QtyUnitCd     string          `json:"qtyUnitCd"`
	VatCatCd      string          `json:"vatCatCd"`
	BtchNo        *string         `json:"btchNo"`
	Bcd           *string         `json:"bcd"`
	DftPrc        decimal.Decimal `json:"dftPrc"`
	AddInfo       *string         `json:"addInfo"`
	SftyQty       *string         `json:"sftyQty"`
	IsrcAplcbYn   string          `json:"isrcAplcbYn"`
	UseYn         string          `json:"useYn"`
	RegrNm        string          `json:"regrNm"`
	RegrID        string          `json:"regrId"`
	ModrNm        string          `json:"modrNm"`
	ModrID        string          `json:"modrId"`
	IplCatCd      string          `json:"iplCatCd,omitempty"`
	TlCatCd       string          `json:"tlCatCd,omitempty"`
	ExciseTxCatCd string          `json:"exciseTxCatCd,omitempty"`
}

// ItemComposition links a manufactured item to its component quantity.
type ItemComposition struct {
	Tpin       string          `json:"tpin"`
	BhfID      string          `json:"bhfId"`
	ItemCd     string          `json:"itemCd"`
	CpstItemCd string          `json:"cpstItemCd"`
	CpstQty    decimal.Decimal `json:"cpstQty"`
	RegrID     string          `json:"regrId"`
	RegrNm     string          `json:"regrNm"`
}

// FetchRequest pulls pending documents from the gateway. LastReqDt is a
// yyyyMMddHHmmss watermark; the caches key on it.
type FetchRequest struct {
	Tpin      string `json:"tpin"`
	BhfID     string `json:"bhfId"`
	LastReqDt string `json:"lastReqDt"`
}

// PurchaseLineItem is one line of a purchase confirmation.
type PurchaseLineItem struct {
	ItemSeq        int             `json:"itemSeq"`
	ItemCd         string          `json:"itemCd"`
	ItemClsCd      string          `json:"itemClsCd"`
	SpplrItemClsCd *string         `json:"spplrItemClsCd"`
	SpplrItemCd    *string         `json:"spplrItemCd"`
	SpplrItemNm    *string         `json:"spplrItemNm"`
	PkgUnitCd      string          `json:"pkgUnitCd"`
	ItemNm         string          `json:"itemNm"`
	Bcd            string          `json:"bcd"`
	Pkg            decimal.Decimal `json:"pkg"`
	QtyUnitCd      string          `json:"qtyUnitCd"`
	Qty            decimal.Decimal `json:"qty"`
	Prc            decimal.Decimal `json:"prc"`
	SplyAmt        decimal.Decimal `json:"splyAmt"`
	DcRt           decimal.Decimal `json:"dcRt"`
	DcAmt          decimal.Decimal `json:"dcAmt"`
	VatCatCd       string          `json:"vatCatCd"`
	IplCatCd       *string         `json:"iplCatCd"`
	TlCatCd        *string         `json:"tlCatCd"`
	ExciseTxCatCd  *string         `json:"exciseTxCatCd"`
	TaxAmt         decimal.Decimal `json:"taxAmt"`
	TaxblAmt       decimal.Decimal `json:"taxblAmt"`
	TotAmt         decimal.Decimal `json:"totAmt"`
	ItemExprDt     *string         `json:"itemExprDt"`
}

// PurchaseConfirmation is the wire shape posted to the purchase endpoint when
// a supplier-reported sale is accepted or rejected locally.
type PurchaseConfirmation struct {
	Tpin        string             `json:"tpin"`
	BhfID       string             `json:"bhfId"`
	InvcNo      int64              `json:"invcNo"`
	OrgInvcNo   int64              `json:"orgInvcNo"`
	SpplrTpin   string             `json:"spplrTpin"`
	SpplrBhfID  string             `json:"spplrBhfId"`
	SpplrNm     string             `json:"spplrNm"`
	SpplrInvcNo int64              `json:"spplrInvcNo"`
	RegTyCd     string             `json:"regTyCd"`
	PchsTyCd    string             `json:"pchsTyCd"`
	RcptTyCd    string             `json:"rcptTyCd"`
	PmtTyCd     string             `json:"pmtTyCd"`
	PchsSttsCd  string             `json:"pchsSttsCd"`
	CfmDt       string             `json:"cfmDt"`
	PchsDt      string             `json:"pchsDt"`
	WrhsDt      string             `json:"wrhsDt"`
	CnclReqDt   string             `json:"cnclReqDt"`
	CnclDt      string             `json:"cnclDt"`
	RfdDt       string             `json:"rfdDt"`
	TotItemCnt  int                `json:"totItemCnt"`
	TotTaxblAmt decimal.Decimal    `json:"totTaxblAmt"`
	TotTaxAmt   decimal.Decimal    `json:"totTaxAmt"`
	TotAmt      decimal.Decimal    `json:"totAmt"`
	Remark      string             `json:"remark"`
	RegrID      string             `json:"regrId"`
	RegrNm      string             `json:"regrNm"`
	ModrNm      string             `json:"modrNm"`
	ModrID      string             `json:"modrId"`
	ItemList    []PurchaseLineItem `json:"itemList"`
}

// PurchaseSaleList is the data block returned by the purchase fetch endpoint.
type PurchaseSaleList struct {
	SaleList []PurchaseSaleEntry `json:"saleList"`
}

// PurchaseSaleEntry is one supplier-reported sale as the gateway returns it.
type PurchaseSaleEntry struct {
	SpplrTpin   string             `json:"spplrTpin"`
	SpplrNm     string             `json:"spplrNm"`
	SpplrBhfID  string             `json:"spplrBhfId"`
	SpplrInvcNo int64              `json:"spplrInvcNo"`
	RcptTyCd    string             `json:"rcptTyCd"`
	PmtTyCd     string             `json:"pmtTyCd"`
	CfmDt       string             `json:"cfmDt"`
	SalesDt     string             `json:"salesDt"`
	StockRlsDt  string             `json:"stockRlsDt"`
	TotItemCnt  int                `json:"totItemCnt"`
	TotTaxblAmt decimal.Decimal    `json:"totTaxblAmt"`
	TotTaxAmt   decimal.Decimal    `json:"totTaxAmt"`
	TotAmt      decimal.Decimal    `json:"totAmt"`
	Remark      string             `json:"remark"`
	ItemList    []PurchaseSaleItem `json:"itemList"`
}

// PurchaseSaleItem is one line of a fetched supplier sale.
type PurchaseSaleItem struct {
	ItemSeq     int             `json:"itemSeq"`
	ItemCd      string          `json:"itemCd"`
	ItemClsCd   string          `json:"itemClsCd"`
	ItemNm      string          `json:"itemNm"`
	Bcd         string          `json:"bcd"`
	PkgUnitCd   string          `json:"pkgUnitCd"`
	Pkg         decimal.Decimal `json:"pkg"`
	QtyUnitCd   string          `json:"qtyUnitCd"`
	Qty         decimal.Decimal `json:"qty"`
	Prc         decimal.Decimal `json:"prc"`
	SplyAmt     decimal.Decimal `json:"splyAmt"`
	DcRt        decimal.Decimal `json:"dcRt"`
	DcAmt       decimal.Decimal `json:"dcAmt"`
	VatCatCd    string          `json:"vatCatCd"`
	TaxblAmt    decimal.Decimal `json:"taxblAmt"`
	VatTaxblAmt decimal.Decimal `json:"vatTaxblAmt"`
	VatAmt      decimal.Decimal `json:"vatAmt"`
	TotAmt      decimal.Decimal `json:"totAmt"`
}

// ImportItemList is the data block returned by the import fetch endpoint.
type ImportItemList struct {
	ItemList []ImportEntry `json:"itemList"`
}

// ImportEntry is one customs declaration line as the gateway returns it.
type ImportEntry struct {
	TaskCd        string          `json:"taskCd"`
	DclDe         string          `json:"dclDe"`
	ItemSeq       int             `json:"itemSeq"`
	DclNo         string          `json:"dclNo"`
	HsCd          string          `json:"hsCd"`
	ItemNm        string          `json:"itemNm"`
	OrgnNatCd     string          `json:"orgnNatCd"`
	ExptNatCd     string          `json:"exptNatCd"`
	PkgUnitCd     string          `json:"pkgUnitCd"`
	Pkg           decimal.Decimal `json:"pkg"`
	QtyUnitCd     string          `json:"qtyUnitCd"`
	Qty           decimal.Decimal `json:"qty"`
	TotWt         decimal.Decimal `json:"totWt"`
	NetWt         decimal.Decimal `json:"netWt"`
	SpplrNm       string          `json:"spplrNm"`
	AgntNm        string          `json:"agntNm"`
	InvcFcurAmt   decimal.Decimal `json:"invcFcurAmt"`
	InvcFcurCd    string          `json:"invcFcurCd"`
	InvcFcurExcrt decimal.Decimal `json:"invcFcurExcrt"`
}

// ItemClassEntry is one UNSPSC classification as the gateway returns it.
type ItemClassEntry struct {
	ItemClsCd  string `json:"itemClsCd"`
	ItemClsNm  string `json:"itemClsNm"`
	ItemClsLvl int    `json:"itemClsLvl"`
	TaxTyCd    string `json:"taxTyCd"`
	MjrTgYn    string `json:"mjrTgYn"`
	UseYn      string `json:"useYn"`
}

// ClassificationList is the data block returned by the classification fetch.
type ClassificationList struct {
	ItemClsList []ItemClassEntry `json:"itemClsList"`
}

// CodeDetail is one code of a common code class.
type CodeDetail struct {
	Cd   string `json:"cd"`
	CdNm string `json:"cdNm"`
}

// CodeClass groups the details of one code class: 10 quantity units, 17
// packaging units, 05 countries.
type CodeClass struct {
	CdCls   string       `json:"cdCls"`
	CdClsNm string       `json:"cdClsNm"`
	DtlList []CodeDetail `json:"dtlList"`
}

// CodeList is the data block returned by the common code fetch.
type CodeList struct {
	ClsList []CodeClass `json:"clsList"`
}

// ImportItemUpdate is one decided line of an import update.
type ImportItemUpdate struct {
	ItemSeq        int    `json:"itemSeq"`
	HsCd           string `json:"hsCd"`
	ItemClsCd      string `json:"itemClsCd"`
	ItemCd         string `json:"itemCd"`
	ImptItemSttsCd string `json:"imptItemSttsCd"`
	Remark         string `json:"remark"`
	ModrNm         string `json:"modrNm"`
	ModrID         string `json:"modrId"`
}

// ImportUpdate approves or rejects fetched import declaration lines.
type ImportUpdate struct {
	Tpin           string             `json:"tpin"`
	BhfID          string             `json:"bhfId"`
	TaskCd         string             `json:"taskCd"`
	DclDe          string             `json:"dclDe"`
	ImportItemList []ImportItemUpdate `json:"importItemList"`
}
