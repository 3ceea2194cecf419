package qrtoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"medverify/internal/pkg/errs"
)

var (
	ErrInvalidHashFormat = errs.New("invalid token hash format")
	ErrInvalidPayload    = errs.New("invalid qr payload")
)

// hashPattern matches a 256-bit digest rendered as lowercase hex. Anything
// else is rejected before any store lookup.
var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

func IsValidHash(hash string) bool {
	return hashPattern.MatchString(hash)
}

// Token is a single-use verification credential bound to one product.
// The used flag transitions false→true exactly once and is never reversed;
// consumed tokens are kept for audit, not deleted.
type Token struct {
	Hash      string
	ProductID string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Used      bool
	UsedAt    *time.Time
}

// New issues a token for productID: a random nonce is bound together with the
// product identifier and issuance instant into a sha256 digest.
func New(productID string, ttl time.Duration, now time.Time) (*Token, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errs.Wrap(err, "failed to generate token nonce")
	}

	sum := sha256.Sum256(fmt.Appendf(nil, "%s%x%d", productID, nonce, now.UnixNano()))

	return &Token{
		Hash:      hex.EncodeToString(sum[:]),
		ProductID: productID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		Used:      false,
	}, nil
}

// IsExpired reports whether the token is past its server-side expiry at the
// given instant. The expiry instant itself is still accepted.
func (t *Token) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Payload is what gets encoded into the QR image. It deliberately carries no
// medicine name, manufacturer, or other descriptive data: a photographed QR
// leaks nothing useful for faking a label.
type Payload struct {
	Hash      string `json:"h"`
	ProductID string `json:"p"`
	IssuedAt  int64  `json:"t"` // epoch millis
}

func (t *Token) RenderPayload() Payload {
	return Payload{
		Hash:      t.Hash,
		ProductID: t.ProductID,
		IssuedAt:  t.IssuedAt.UnixMilli(),
	}
}

func (p Payload) Encode() (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode qr payload")
	}
	return string(raw), nil
}

// ParsePayload decodes scanned QR data. All three fields are mandatory; the
// embedded timestamp is informational only and is never trusted for expiry
// decisions (those use the stored token record).
func ParsePayload(qrData string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(qrData), &p); err != nil {
		return Payload{}, errs.Mark(errs.Wrap(err, "qr payload is not valid JSON"), ErrInvalidPayload)
	}
	if p.Hash == "" || p.ProductID == "" || p.IssuedAt == 0 {
		return Payload{}, errs.Mark(errs.New("qr payload is missing required fields"), ErrInvalidPayload)
	}
	if !IsValidHash(p.Hash) {
		return Payload{}, errs.Mark(errs.New("qr payload hash is malformed: "+strconv.Quote(p.Hash)), ErrInvalidHashFormat)
	}
	return p, nil
}
