package medicine

import (
	"strings"
	"time"

	"medverify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errs.New("medicine name is required")
	ErrEmptyManufacturer = errs.New("manufacturer is required")
	ErrEmptyBatchNumber  = errs.New("batch number is required")
	ErrInvalidDates      = errs.New("expiry date must be after manufacture date")
)

// Medicine is a registered pharmaceutical batch. Records are immutable once
// issued; there is no update or delete path.
type Medicine struct {
	productID       string
	name            string
	manufacturer    string
	batchNumber     string
	manufactureDate time.Time
	expiryDate      time.Time
	ledgerRef       *string
	registeredAt    time.Time
}

// NewProductID issues a fresh product identifier, e.g. "MED-3F2A8B1C".
func NewProductID() string {
	return "MED-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}

func NewMedicine(productID, name, manufacturer, batchNumber string, manufactureDate, expiryDate time.Time, now time.Time) (*Medicine, error) {
	name = strings.TrimSpace(name)
	manufacturer = strings.TrimSpace(manufacturer)
	batchNumber = strings.TrimSpace(batchNumber)

	if name == "" {
		return nil, ErrEmptyName
	}
	if manufacturer == "" {
		return nil, ErrEmptyManufacturer
	}
	if batchNumber == "" {
		return nil, ErrEmptyBatchNumber
	}
	if !expiryDate.After(manufactureDate) {
		return nil, ErrInvalidDates
	}

	if productID == "" {
		productID = NewProductID()
	}

	return &Medicine{
		productID:       productID,
		name:            name,
		manufacturer:    manufacturer,
		batchNumber:     batchNumber,
		manufactureDate: manufactureDate,
		expiryDate:      expiryDate,
		registeredAt:    now,
	}, nil
}

// Reconstruct rebuilds a Medicine from persisted state without re-validating.
func Reconstruct(productID, name, manufacturer, batchNumber string, manufactureDate, expiryDate time.Time, ledgerRef *string, registeredAt time.Time) *Medicine {
	return &Medicine{
		productID:       productID,
		name:            name,
		manufacturer:    manufacturer,
		batchNumber:     batchNumber,
		manufactureDate: manufactureDate,
		expiryDate:      expiryDate,
		ledgerRef:       ledgerRef,
		registeredAt:    registeredAt,
	}
}

func (m *Medicine) ProductID() string          { return m.productID }
func (m *Medicine) Name() string               { return m.name }
func (m *Medicine) Manufacturer() string       { return m.manufacturer }
func (m *Medicine) BatchNumber() string        { return m.batchNumber }
func (m *Medicine) ManufactureDate() time.Time { return m.manufactureDate }
func (m *Medicine) ExpiryDate() time.Time      { return m.expiryDate }
func (m *Medicine) LedgerRef() *string         { return m.ledgerRef }
func (m *Medicine) RegisteredAt() time.Time    { return m.registeredAt }

// AttachLedgerRef records the ledger attestation handle. The reference stays
// nil until the ledger write succeeds.
func (m *Medicine) AttachLedgerRef(ref string) {
	m.ledgerRef = &ref
}

// IsExpired reports whether the batch is past its expiry date at the given
// instant. The boundary instant itself is still considered valid.
func (m *Medicine) IsExpired(now time.Time) bool {
	return now.After(m.expiryDate)
}
