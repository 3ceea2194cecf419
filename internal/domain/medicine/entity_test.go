//go:build unit

package medicine_test

import (
	"regexp"
	"testing"
	"time"

	"medverify/internal/domain/medicine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productIDPattern = regexp.MustCompile(`^MED-[0-9A-F]{8}$`)

func validArgs() (string, string, string, time.Time, time.Time, time.Time) {
	manufactured := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	expiry := manufactured.AddDate(2, 0, 0)
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	return "Paracetamol 500mg", "Acme Pharma", "BATCH-001", manufactured, expiry, now
}

func TestNewMedicine(t *testing.T) {
	name, manufacturer, batch, manufactured, expiry, now := validArgs()

	t.Run("success: generates product id and keeps fields", func(t *testing.T) {
		m, err := medicine.NewMedicine("", name, manufacturer, batch, manufactured, expiry, now)
		require.NoError(t, err)

		assert.Regexp(t, productIDPattern, m.ProductID())
		assert.Equal(t, name, m.Name())
		assert.Equal(t, manufacturer, m.Manufacturer())
		assert.Equal(t, batch, m.BatchNumber())
		assert.Equal(t, now, m.RegisteredAt())
		assert.Nil(t, m.LedgerRef())
	})

	t.Run("success: keeps explicit product id", func(t *testing.T) {
		m, err := medicine.NewMedicine("MED-0A1B2C3D", name, manufacturer, batch, manufactured, expiry, now)
		require.NoError(t, err)
		assert.Equal(t, "MED-0A1B2C3D", m.ProductID())
	})

	t.Run("success: trims surrounding whitespace", func(t *testing.T) {
		m, err := medicine.NewMedicine("", "  "+name+"  ", manufacturer, batch, manufactured, expiry, now)
		require.NoError(t, err)
		assert.Equal(t, name, m.Name())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name         string
			medName      string
			manufacturer string
			batch        string
			expiry       time.Time
			errIs        error
		}{
			{"empty name", "", manufacturer, batch, expiry, medicine.ErrEmptyName},
			{"whitespace name", "   ", manufacturer, batch, expiry, medicine.ErrEmptyName},
			{"empty manufacturer", name, "", batch, expiry, medicine.ErrEmptyManufacturer},
			{"empty batch number", name, manufacturer, "", expiry, medicine.ErrEmptyBatchNumber},
			{"expiry before manufacture", name, manufacturer, batch, manufactured.AddDate(-1, 0, 0), medicine.ErrInvalidDates},
			{"expiry equals manufacture", name, manufacturer, batch, manufactured, medicine.ErrInvalidDates},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := medicine.NewMedicine("", tc.medName, tc.manufacturer, tc.batch, manufactured, tc.expiry, now)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestNewProductID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := medicine.NewProductID()
		assert.Regexp(t, productIDPattern, id)
		assert.False(t, seen[id], "duplicate product id %s", id)
		seen[id] = true
	}
}

func TestMedicineIsExpired(t *testing.T) {
	name, manufacturer, batch, manufactured, expiry, now := validArgs()
	m, err := medicine.NewMedicine("", name, manufacturer, batch, manufactured, expiry, now)
	require.NoError(t, err)

	assert.False(t, m.IsExpired(expiry.Add(-time.Second)))
	assert.False(t, m.IsExpired(expiry), "the expiry instant itself is still valid")
	assert.True(t, m.IsExpired(expiry.Add(time.Second)))
}

func TestAttachLedgerRef(t *testing.T) {
	name, manufacturer, batch, manufactured, expiry, now := validArgs()
	m, err := medicine.NewMedicine("", name, manufacturer, batch, manufactured, expiry, now)
	require.NoError(t, err)

	m.AttachLedgerRef("0xabc123")
	require.NotNil(t, m.LedgerRef())
	assert.Equal(t, "0xabc123", *m.LedgerRef())
}
