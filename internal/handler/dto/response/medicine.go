package response

import (
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/domain/qrtoken"
)

type MedicineResponse struct {
	ProductID       string    `json:"productId"`
	Name            string    `json:"name"`
	Manufacturer    string    `json:"manufacturer"`
	BatchNumber     string    `json:"batchNumber"`
	ManufactureDate time.Time `json:"manufactureDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	LedgerRef       *string   `json:"ledgerRef,omitempty"`
	RegisteredAt    time.Time `json:"registeredAt"`
}

func FromMedicine(m *medicine.Medicine) *MedicineResponse {
	return &MedicineResponse{
		ProductID:       m.ProductID(),
		Name:            m.Name(),
		Manufacturer:    m.Manufacturer(),
		BatchNumber:     m.BatchNumber(),
		ManufactureDate: m.ManufactureDate(),
		ExpiryDate:      m.ExpiryDate(),
		LedgerRef:       m.LedgerRef(),
		RegisteredAt:    m.RegisteredAt(),
	}
}

type QRTokenResponse struct {
	QRData    string `json:"qrData"`
	Hash      string `json:"hash"`
	ProductID string `json:"productId"`
	IssuedAt  int64  `json:"issuedAt"`
}

func FromQRPayload(p qrtoken.Payload) (*QRTokenResponse, error) {
	encoded, err := p.Encode()
	if err != nil {
		return nil, err
	}
	return &QRTokenResponse{
		QRData:    encoded,
		Hash:      p.Hash,
		ProductID: p.ProductID,
		IssuedAt:  p.IssuedAt,
	}, nil
}

type RegisterMedicineResponse struct {
	Medicine  *MedicineResponse `json:"medicine"`
	LedgerRef string            `json:"ledgerRef"`
	QR        *QRTokenResponse  `json:"qr,omitempty"`
}
