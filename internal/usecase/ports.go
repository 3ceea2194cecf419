package usecase

import (
	"context"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/domain/qrtoken"
	"medverify/internal/domain/verdict"
	"medverify/internal/pkg/errs"
)

// Sentinel errors marked onto store/gateway failures so callers can branch
// without depending on infrastructure types. NotFound and Unavailable are
// expected outcomes, not failures; conflating them would turn "ledger is
// down" into "counterfeit".
var (
	ErrRegistryNotFound  = errs.New("product not found in registry")
	ErrDuplicateProduct  = errs.New("product id already registered")
	ErrLedgerNotFound    = errs.New("not found on ledger")
	ErrLedgerUnavailable = errs.New("ledger unavailable")
	ErrAlreadyAttested   = errs.New("product already attested on ledger")
)

// RegistryStore is the authoritative record of who registered what.
// Records are created once and never updated or deleted.
type RegistryStore interface {
	FindByProductID(ctx context.Context, productID string) (*medicine.Medicine, error)
	Create(ctx context.Context, m *medicine.Medicine) error
	List(ctx context.Context, manufacturer string) ([]*medicine.Medicine, error)
}

// LedgerAttestation is the ledger's independent view of a product. Its copies
// of the descriptive fields may lag or diverge from the registry record;
// divergence is itself a signal.
type LedgerAttestation struct {
	Exists          bool      `json:"exists"`
	IsVerified      bool      `json:"isVerified"`
	Name            string    `json:"name"`
	Manufacturer    string    `json:"manufacturer"`
	ManufactureDate time.Time `json:"manufactureDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
}

// LedgerGateway adapts the append-only ledger. The ledger is an untrusted,
// possibly-slow remote dependency: every call runs under a bounded timeout,
// and a timeout or transport error surfaces as ErrLedgerUnavailable, never as
// ErrLedgerNotFound.
type LedgerGateway interface {
	Attest(ctx context.Context, m *medicine.Medicine) (string, error)
	Query(ctx context.Context, productID string) (*LedgerAttestation, error)
	AttestToken(ctx context.Context, tokenHash, productID string) (string, error)
	VerifyToken(ctx context.Context, tokenHash string) (bool, error)
}

// ConsumeOutcome classifies a token consumption attempt.
type ConsumeOutcome string

const (
	ConsumeConsumed    ConsumeOutcome = "CONSUMED"
	ConsumeExpired     ConsumeOutcome = "EXPIRED"
	ConsumeNotFound    ConsumeOutcome = "NOT_FOUND"
	ConsumeAlreadyUsed ConsumeOutcome = "ALREADY_USED"
)

// TokenStore owns QrToken persistence. Consume must be a single atomic
// conditional transition (used=false → used=true) at the storage layer: of
// two concurrent calls for the same hash, exactly one observes Consumed.
type TokenStore interface {
	Insert(ctx context.Context, t *qrtoken.Token) error
	Consume(ctx context.Context, tokenHash, productID string, now time.Time) (ConsumeOutcome, error)
	FindByHash(ctx context.Context, tokenHash string) (*qrtoken.Token, error)
}

// Attempt is one immutable audit record of a verification call.
type Attempt struct {
	ProductID     string
	Status        verdict.Status
	Method        string // "direct" | "qr"
	RequesterAddr string
	Detail        map[string]any
	Timestamp     time.Time
}

const (
	MethodDirect = "direct"
	MethodQR     = "qr"
)

// AuditStore appends verification attempts. Writes are best-effort from the
// engine's perspective; a failed append never fails the verification call.
type AuditStore interface {
	Append(ctx context.Context, a *Attempt) error
}

// Stats are the aggregate counters served by GET /verify/logs.
type Stats struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Failed     int64 `json:"failed"`
}

// StatsCounter maintains the aggregate counters alongside the audit trail.
type StatsCounter interface {
	Record(ctx context.Context, status verdict.Status) error
	Snapshot(ctx context.Context) (Stats, error)
}
