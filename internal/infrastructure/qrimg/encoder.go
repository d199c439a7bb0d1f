// Package qrimg кодирует платёжную строку в PNG-изображение QR-кода,
// встраиваемое в печатную форму как data-URL.
package qrimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/mbdocs/mbdocs-api/internal/domain/printing"
)

// Встраиваемый QR печатается квадратом 120×120 px при рендеринге; PNG
// кодируется вдвое крупнее, чтобы не терять чёткость при печати.
const imageSize = 240

// Encoder реализует printing.QREncoder через boombuler/barcode
// с уровнем коррекции ошибок M.
type Encoder struct{}

var _ printing.QREncoder = (*Encoder)(nil)

// NewEncoder создаёт кодировщик.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// DataURL кодирует строку в PNG и возвращает data-URL.
func (e *Encoder) DataURL(payload string) (string, error) {
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("qrimg: кодирование: %w", err)
	}
	scaled, err := barcode.Scale(code, imageSize, imageSize)
	if err != nil {
		return "", fmt.Errorf("qrimg: масштабирование: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("qrimg: png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
