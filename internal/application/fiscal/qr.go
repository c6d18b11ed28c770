package fiscal

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const qrImageSize = 256

// EncodeQRCode renders the verification URL as a base64 PNG suitable for
// embedding in a printed receipt.
func EncodeQRCode(url string) (string, error) {
	code, err := qr.Encode(url, qr.M, qr.Auto)
	if err != nil {
		return "", err
	}

	code, err = barcode.Scale(code, qrImageSize, qrImageSize)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
