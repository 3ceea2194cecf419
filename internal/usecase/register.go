package usecase

import (
	"context"
	"log/slog"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/domain/qrtoken"
	"medverify/internal/pkg/clock"
)

type RegisterMedicineCommand struct {
	Name            string
	Manufacturer    string
	BatchNumber     string
	ManufactureDate time.Time
	ExpiryDate      time.Time
}

type RegisterMedicineResult struct {
	Medicine  *medicine.Medicine
	LedgerRef string
	QRPayload qrtoken.Payload
}

// MedicineCommands covers manufacturer-side registration. Records are
// immutable once issued; there is deliberately no update or delete.
type MedicineCommands interface {
	Register(ctx context.Context, cmd RegisterMedicineCommand) (*RegisterMedicineResult, error)
	IssueQR(ctx context.Context, productID string) (qrtoken.Payload, error)
}

type MedicineQueries interface {
	GetByProductID(ctx context.Context, productID string) (*medicine.Medicine, error)
	List(ctx context.Context, manufacturer string) ([]*medicine.Medicine, error)
}

type medicineUseCaseImpl struct {
	registry RegistryStore
	ledger   LedgerGateway
	tokens   TokenService
	clock    clock.Clock
}

func NewMedicineUseCase(registry RegistryStore, ledger LedgerGateway, tokens TokenService, clk clock.Clock) (MedicineCommands, MedicineQueries) {
	uc := &medicineUseCaseImpl{
		registry: registry,
		ledger:   ledger,
		tokens:   tokens,
		clock:    clk,
	}
	return uc, uc
}

// Register attests the new batch on the ledger first, then persists the
// registry record carrying the ledger reference, then issues an initial QR
// token. The ledger write leads: a record without attestation would verify
// as SUSPICIOUS forever.
func (uc *medicineUseCaseImpl) Register(ctx context.Context, cmd RegisterMedicineCommand) (*RegisterMedicineResult, error) {
	m, err := medicine.NewMedicine(
		"", cmd.Name, cmd.Manufacturer, cmd.BatchNumber,
		cmd.ManufactureDate, cmd.ExpiryDate, uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	ref, err := uc.ledger.Attest(ctx, m)
	if err != nil {
		return nil, err
	}
	m.AttachLedgerRef(ref)

	if err := uc.registry.Create(ctx, m); err != nil {
		return nil, err
	}

	result := &RegisterMedicineResult{Medicine: m, LedgerRef: ref}

	// The initial QR is a convenience; the batch is registered either way
	// and a fresh token can be requested later.
	if _, payload, err := uc.tokens.Issue(ctx, m.ProductID()); err != nil {
		slog.Warn("failed to issue initial qr token", "product_id", m.ProductID(), "error", err.Error())
	} else {
		result.QRPayload = payload
	}

	return result, nil
}

func (uc *medicineUseCaseImpl) IssueQR(ctx context.Context, productID string) (qrtoken.Payload, error) {
	if _, err := uc.registry.FindByProductID(ctx, productID); err != nil {
		return qrtoken.Payload{}, err
	}

	_, payload, err := uc.tokens.Issue(ctx, productID)
	if err != nil {
		return qrtoken.Payload{}, err
	}
	return payload, nil
}

func (uc *medicineUseCaseImpl) GetByProductID(ctx context.Context, productID string) (*medicine.Medicine, error) {
	return uc.registry.FindByProductID(ctx, productID)
}

func (uc *medicineUseCaseImpl) List(ctx context.Context, manufacturer string) ([]*medicine.Medicine, error) {
	return uc.registry.List(ctx, manufacturer)
}
