package parcel

import (
	"encoding/json"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// QRPayloadType marks label content produced by this service.
const QRPayloadType = "package_tracking"

// QRPayload is the content of a parcel label QR code.
type QRPayload struct {
	TrackingCode string `json:"tracking_code,omitempty"`
	PackageID    string `json:"package_id,omitempty"`
	Type         string `json:"type,omitempty"`
}

// NewQRPayload describes the label of p.
func NewQRPayload(code TrackingCode, id kernel.UUID) QRPayload {
	return QRPayload{TrackingCode: code.String(), PackageID: id.String(), Type: QRPayloadType}
}

// Encode renders the payload as the JSON printed on the label.
func (q QRPayload) Encode() (string, error) {
	b, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseQRPayload accepts the JSON label content, a bare parcel id or a bare tracking code.
func ParseQRPayload(raw string) (QRPayload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return QRPayload{}, errs.NewValueIsRequiredError("qr_data")
	}

	if strings.HasPrefix(raw, "{") {
		var q QRPayload
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return QRPayload{}, errs.NewValueIsInvalidErrorWithCause("qr_data", err)
		}
		if q.TrackingCode == "" && q.PackageID == "" {
			return QRPayload{}, errs.NewValueIsRequiredError("qr_data.tracking_code")
		}
		return q, nil
	}

	if _, err := kernel.UUIDFromString(raw); err == nil {
		return QRPayload{PackageID: raw}, nil
	}
	return QRPayload{TrackingCode: raw}, nil
}
