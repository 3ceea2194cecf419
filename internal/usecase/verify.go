package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/domain/qrtoken"
	"medverify/internal/domain/verdict"
	"medverify/internal/pkg/clock"
	"medverify/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidQRFormat = errs.New("invalid qr code format")

// Result is the graded verdict returned by both verification entry points.
type Result struct {
	Status             verdict.Status
	Confidence         verdict.Confidence
	IsExpired          bool
	Medicine           *medicine.Medicine // nil unless the registry record was found
	Message            string
	BlockchainVerified bool
	Checks             verdict.Checks
	Warnings           []string
}

// IsValid reports the single-bit summary consumers key off first.
func (r *Result) IsValid() bool {
	return r.Status == verdict.StatusAuthentic
}

// Verifier is the verification engine: it folds the registry record, the
// ledger attestation, the expiry clock, and (on the QR path) the one-time
// token state into a single deterministic verdict. It is the only place
// allowed to translate component outcomes into verdict vocabulary.
type Verifier interface {
	VerifyByProductID(ctx context.Context, productID, requesterAddr string) (*Result, error)
	VerifyByQR(ctx context.Context, qrData, requesterAddr string) (*Result, error)
}

type verifierImpl struct {
	registry RegistryStore
	ledger   LedgerGateway
	tokens   TokenService
	audit    AuditStore
	stats    StatsCounter
	clock    clock.Clock
	qrTTL    time.Duration
}

func NewVerifier(
	registry RegistryStore,
	ledger LedgerGateway,
	tokens TokenService,
	audit AuditStore,
	stats StatsCounter,
	clk clock.Clock,
	qrTTL time.Duration,
) Verifier {
	return &verifierImpl{
		registry: registry,
		ledger:   ledger,
		tokens:   tokens,
		audit:    audit,
		stats:    stats,
		clock:    clk,
		qrTTL:    qrTTL,
	}
}

func (v *verifierImpl) VerifyByProductID(ctx context.Context, productID, requesterAddr string) (*Result, error) {
	res, err := v.evaluateProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	v.recordAttempt(ctx, productID, res, MethodDirect, requesterAddr)
	return res, nil
}

func (v *verifierImpl) VerifyByQR(ctx context.Context, qrData, requesterAddr string) (*Result, error) {
	payload, err := qrtoken.ParsePayload(qrData)
	if err != nil {
		// No reliable productId to log against; reject without an audit row.
		return nil, errs.Mark(err, ErrInvalidQRFormat)
	}

	now := v.clock.Now()

	// Cheap precheck on the embedded issuance time. The authoritative expiry
	// decision below uses the stored token record, never the caller's clock.
	if now.After(time.UnixMilli(payload.IssuedAt).Add(v.qrTTL)) {
		res := qrExpiredResult()
		v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
		return res, nil
	}

	outcome, err := v.tokens.ValidateAndConsume(ctx, payload.Hash, payload.ProductID)
	if err != nil {
		if errors.Is(err, ErrInvalidTokenHash) {
			return nil, errs.Mark(err, ErrInvalidQRFormat)
		}
		return nil, err
	}

	// An expired, unknown, or replayed token is dispositive regardless of
	// what the underlying product record says; none of these proceed to the
	// medicine check.
	switch outcome {
	case ConsumeExpired:
		res := qrExpiredResult()
		v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
		return res, nil
	case ConsumeNotFound:
		res := &Result{
			Status:     verdict.StatusCounterfeit,
			Confidence: verdict.ConfidenceHigh,
			Message:    verdict.MsgQRNotFound,
			Warnings:   []string{verdict.WarnNotRegistered},
		}
		v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
		return res, nil
	case ConsumeAlreadyUsed:
		res := &Result{
			Status:     verdict.StatusSuspicious,
			Confidence: verdict.ConfidenceMedium,
			Message:    verdict.MsgQRAlreadyUsed,
			Checks:     verdict.Checks{QRValid: true},
			Warnings:   []string{verdict.WarnQRReplay},
		}
		v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
		return res, nil
	case ConsumeConsumed:
		// fall through to the ledger token check
	}

	// Independently confirm the hash on the ledger: a token that consumed
	// locally but was never attested is a forgery. An unavailable ledger is
	// not evidence of fraud; it only weakens confidence.
	var qrWarnings []string
	attested, verr := v.ledger.VerifyToken(ctx, payload.Hash)
	switch {
	case verr != nil:
		qrWarnings = append(qrWarnings, verdict.WarnQRUnconfirmed)
	case !attested:
		res := &Result{
			Status:     verdict.StatusCounterfeit,
			Confidence: verdict.ConfidenceHigh,
			Message:    verdict.MsgCounterfeit,
			Warnings:   []string{verdict.WarnQRNotAttested},
		}
		v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
		return res, nil
	}

	res, err := v.evaluateProduct(ctx, payload.ProductID)
	if err != nil {
		return nil, err
	}

	res.Checks.QRValid = true
	res.Checks.QRNotUsed = true
	res.Warnings = append(qrWarnings, res.Warnings...)
	if res.Status == verdict.StatusAuthentic {
		res.Message = verdict.MsgQRAuthentic
	}

	v.recordAttempt(ctx, payload.ProductID, res, MethodQR, requesterAddr)
	return res, nil
}

// evaluateProduct runs the registry lookup and ledger query concurrently and
// folds both signals plus the expiry clock into a verdict. It does not write
// the audit record; the public entry points do that with their own method tag.
func (v *verifierImpl) evaluateProduct(ctx context.Context, productID string) (*Result, error) {
	var (
		rec        *medicine.Medicine
		att        *LedgerAttestation
		ledgerDown bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := v.registry.FindByProductID(gctx, productID)
		if err != nil {
			if errors.Is(err, ErrRegistryNotFound) {
				return nil
			}
			// Registry outage must never read as "counterfeit".
			return err
		}
		rec = m
		return nil
	})
	g.Go(func() error {
		a, err := v.ledger.Query(gctx, productID)
		if err != nil {
			if errors.Is(err, ErrLedgerUnavailable) {
				ledgerDown = true
			}
			// NotFound: no attestation, folded into the verdict below.
			return nil
		}
		att = a
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if rec == nil {
		return &Result{
			Status:     verdict.StatusNotFound,
			Confidence: verdict.ConfidenceHigh,
			Message:    verdict.MsgNotFound,
			Warnings:   []string{verdict.WarnNotRegistered},
		}, nil
	}

	blockchainVerified := att != nil && att.Exists && att.IsVerified

	var warnings []string
	if ledgerDown {
		warnings = append(warnings, verdict.WarnLedgerUnreached)
	} else if !blockchainVerified {
		warnings = append(warnings, verdict.WarnLedgerUnverified)
	}
	if att != nil && att.Exists && (att.Name != rec.Name() || att.Manufacturer != rec.Manufacturer()) {
		warnings = append(warnings, verdict.WarnLedgerMismatch)
	}

	isExpired := rec.IsExpired(v.clock.Now())

	// Fixed-order decision table; first match wins.
	var (
		status     verdict.Status
		confidence verdict.Confidence
	)
	switch {
	case blockchainVerified && !isExpired:
		status, confidence = verdict.StatusAuthentic, verdict.ConfidenceHigh
	case blockchainVerified && isExpired:
		status, confidence = verdict.StatusExpired, verdict.ConfidenceHigh
	default:
		status, confidence = verdict.StatusSuspicious, verdict.ConfidenceMedium
	}

	return &Result{
		Status:             status,
		Confidence:         confidence,
		IsExpired:          isExpired,
		Medicine:           rec,
		Message:            verdict.Message(status),
		BlockchainVerified: blockchainVerified,
		Checks: verdict.Checks{
			DatabaseFound:      true,
			BlockchainVerified: blockchainVerified,
			NotExpired:         !isExpired,
		},
		Warnings: warnings,
	}, nil
}

func qrExpiredResult() *Result {
	return &Result{
		Status:     verdict.StatusSuspicious,
		Confidence: verdict.ConfidenceMedium,
		Message:    verdict.MsgQRExpired,
		Warnings:   []string{verdict.WarnQRExpiredTamper},
	}
}

// recordAttempt appends the audit row and bumps the aggregate counters.
// Both are best-effort: failures go to operational logging and never affect
// the verdict already decided.
func (v *verifierImpl) recordAttempt(ctx context.Context, productID string, res *Result, method, requesterAddr string) {
	attempt := &Attempt{
		ProductID:     productID,
		Status:        res.Status,
		Method:        method,
		RequesterAddr: requesterAddr,
		Detail: map[string]any{
			"databaseFound":      res.Checks.DatabaseFound,
			"blockchainVerified": res.Checks.BlockchainVerified,
			"notExpired":         res.Checks.NotExpired,
			"qrValid":            res.Checks.QRValid,
			"qrNotUsed":          res.Checks.QRNotUsed,
		},
		Timestamp: v.clock.Now(),
	}
	if len(res.Warnings) > 0 {
		attempt.Detail["warnings"] = res.Warnings
	}

	if err := v.audit.Append(ctx, attempt); err != nil {
		slog.Error("failed to append verification attempt", "product_id", productID, "error", err.Error())
	}
	if err := v.stats.Record(ctx, res.Status); err != nil {
		slog.Error("failed to record verification counters", "product_id", productID, "error", err.Error())
	}
}
