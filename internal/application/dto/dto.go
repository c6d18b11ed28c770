package dto

import "github.com/shopspring/decimal"

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// InvoiceResponse exposes the fiscalization result written back onto the
// document.
type InvoiceResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	MoveType         string  `json:"move_type"`
	FiscalNumber     string  `json:"fiscal_number"`
	ReceiptNo        *int64  `json:"receipt_no"`
	InternalData     *string `json:"internal_data"`
	ReceiptSignature *string `json:"receipt_signature"`
	PublishDate      *string `json:"publish_date"`
	SdcID            *string `json:"sdc_id"`
	MrcNo            *string `json:"mrc_no"`
	QRCodeURL        *string `json:"qr_code_url"`
	QRCodeImage      *string `json:"qr_code_image"`
	IsPrinted        bool    `json:"is_printed"`
}

// ItemRequest creates or updates an item master record. ItemCode is optional
// on creation; when empty the server generates one.
type ItemRequest struct {
	Name                string          `json:"name"`
	ItemCode            string          `json:"item_code"`
	ClassificationCode  string          `json:"classification_code"`
	ClassificationLevel int             `json:"classification_level"`
	TaxTypeCode         string          `json:"tax_type_code"`
	ItemType            string          `json:"item_type"`
	PackagingUnitCode   string          `json:"packaging_unit_code"`
	QuantityUnitCode    string          `json:"quantity_unit_code"`
	OriginCountryCode   string          `json:"origin_country_code"`
	Barcode             string          `json:"barcode"`
	ListPrice           decimal.Decimal `json:"list_price"`
	TaxCategory         string          `json:"tax_category"`
	UseYn               bool            `json:"use_yn"`
}

type ItemResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	ItemCode           string          `json:"item_code"`
	ClassificationCode string          `json:"classification_code"`
	ItemType           string          `json:"item_type"`
	PackagingUnitCode  string          `json:"packaging_unit_code"`
	QuantityUnitCode   string          `json:"quantity_unit_code"`
	OriginCountryCode  string          `json:"origin_country_code"`
	Barcode            string          `json:"barcode"`
	ListPrice          decimal.Decimal `json:"list_price"`
	TaxCategory        string          `json:"tax_category"`
	UseYn              bool            `json:"use_yn"`
}

// ImportDecisionRequest approves or rejects the lines of one customs
// declaration. ItemMappings keys on the declaration line sequence and maps to
// a local item id; required for approval, ignored on rejection.
type ImportDecisionRequest struct {
	ItemMappings map[int]string `json:"item_mappings"`
	Remark       string         `json:"remark"`
}

type SetTPINRequest struct {
	TPIN string `json:"tpin"`
}

// SetQuantityRequest sets an item's absolute on-hand quantity.
type SetQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// QRCodeResponse carries a regenerated receipt QR image.
type QRCodeResponse struct {
	QRCodeImage string `json:"qr_code_image"`
}

// CatalogSyncResponse reports how many catalogue entries a sync stored.
type CatalogSyncResponse struct {
	Classifications int `json:"classifications"`
	CommonCodes     int `json:"common_codes"`
}

type ClassificationResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	TaxTypeCode string `json:"tax_type_code"`
	MajorTarget bool   `json:"major_target"`
}

type CommonCodeResponse struct {
	ClassCode string `json:"class_code"`
	ClassName string `json:"class_name"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}
