// Package qrcode renders QR labels as PNG images with boombuler/barcode.
package qrcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Generator implements ports.QRGenerator with medium error correction.
type Generator struct {
	level qr.ErrorCorrectionLevel
}

func NewGenerator() Generator {
	return Generator{level: qr.M}
}

func (g Generator) Encode(content string, size int) ([]byte, error) {
	code, err := qr.Encode(content, g.level, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("scale qr to %dpx: %w", size, err)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
