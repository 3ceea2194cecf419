package verdict

// Status is the five-state classification returned by the verification
// engine. The set is closed: adding a value is a breaking change for every
// consumer of the wire contract.
type Status string

const (
	StatusAuthentic   Status = "AUTHENTIC"
	StatusCounterfeit Status = "COUNTERFEIT"
	StatusExpired     Status = "EXPIRED"
	StatusSuspicious  Status = "SUSPICIOUS"
	StatusNotFound    Status = "NOT_FOUND"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Checks carries the individual signals the verdict was derived from, so
// programmatic consumers don't have to parse messages.
type Checks struct {
	DatabaseFound      bool `json:"databaseFound"`
	BlockchainVerified bool `json:"blockchainVerified"`
	NotExpired         bool `json:"notExpired"`
	QRValid            bool `json:"qrValid"`
	QRNotUsed          bool `json:"qrNotUsed"`
}

// Canonical per-status messages. Existing consumers match on these exact
// strings; do not rephrase.
const (
	MsgAuthentic   = "This medicine is genuine, verified on the ledger, and safe to use."
	MsgExpired     = "This medicine is authentic but has expired. Do not consume."
	MsgCounterfeit = "This product is NOT registered on the ledger. This is likely a fake product. Do not purchase or consume."
	MsgSuspicious  = "Unable to fully verify this medicine. Exercise caution and contact the manufacturer."
	MsgNotFound    = "This medicine is not registered in our system."

	// QR-path overrides.
	MsgQRAuthentic   = "This medicine is genuine, verified on the ledger via secure QR code, and safe to use."
	MsgQRExpired     = "This QR code has expired. Please request a freshly generated code."
	MsgQRNotFound    = "This QR code is not registered in our system. This is likely a fake product. Do not purchase or consume."
	MsgQRAlreadyUsed = "This QR code has already been scanned. This could indicate duplication or tampering."
)

// Warnings accumulated alongside a verdict.
const (
	WarnNotRegistered    = "Product is not registered in the database - possible counterfeit"
	WarnLedgerUnreached  = "Unable to verify on ledger - authenticity could not be independently confirmed"
	WarnLedgerMismatch   = "Ledger attestation differs from registry data"
	WarnLedgerUnverified = "Product is not verified on the ledger"
	WarnQRExpiredTamper  = "Expired QR codes can indicate tampering"
	WarnQRReplay         = "QR code reuse detected - the product may have been duplicated"
	WarnQRNotAttested    = "QR token is not attested on the ledger"
	WarnQRUnconfirmed    = "Unable to confirm QR token on ledger"
)

// Message returns the canonical message for a status on the direct
// verification path.
func Message(s Status) string {
	switch s {
	case StatusAuthentic:
		return MsgAuthentic
	case StatusExpired:
		return MsgExpired
	case StatusCounterfeit:
		return MsgCounterfeit
	case StatusSuspicious:
		return MsgSuspicious
	case StatusNotFound:
		return MsgNotFound
	default:
		return MsgSuspicious
	}
}
