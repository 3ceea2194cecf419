package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"medverify/internal/domain/medicine"
	"medverify/internal/infra"
	"medverify/internal/pkg/config"
	"medverify/internal/pkg/errs"
	"medverify/internal/usecase"
)

// Client talks to the ledger node over HTTP. The ledger is an untrusted,
// possibly-slow remote: every call runs under the configured timeout, and a
// timeout or transport error surfaces as ErrLedgerUnavailable, never as
// ErrLedgerNotFound, which is reserved for an authoritative 404.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.LedgerConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type attestRequest struct {
	ProductID       string    `json:"productId"`
	Name            string    `json:"name"`
	Manufacturer    string    `json:"manufacturer"`
	ManufactureDate time.Time `json:"manufactureDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
}

type attestTokenRequest struct {
	TokenHash string `json:"tokenHash"`
	ProductID string `json:"productId"`
}

type refResponse struct {
	Ref string `json:"ref"`
}

type tokenStatusResponse struct {
	Attested bool `json:"attested"`
}

func (c *Client) Attest(ctx context.Context, m *medicine.Medicine) (string, error) {
	body := attestRequest{
		ProductID:       m.ProductID(),
		Name:            m.Name(),
		Manufacturer:    m.Manufacturer(),
		ManufactureDate: m.ManufactureDate(),
		ExpiryDate:      m.ExpiryDate(),
	}

	var ref refResponse
	status, err := c.do(ctx, http.MethodPost, "/attestations", body, &ref)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusCreated, http.StatusOK:
		return ref.Ref, nil
	case http.StatusConflict:
		return "", errs.Mark(infra.WrapRepoErr("product already attested", nil, infra.KindDuplicateKey), usecase.ErrAlreadyAttested)
	default:
		return "", unavailable("unexpected ledger response attesting product", nil)
	}
}

func (c *Client) Query(ctx context.Context, productID string) (*usecase.LedgerAttestation, error) {
	var att usecase.LedgerAttestation
	status, err := c.do(ctx, http.MethodGet, "/attestations/"+productID, nil, &att)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return &att, nil
	case http.StatusNotFound:
		return nil, errs.Mark(infra.WrapRepoErr("attestation not found", nil, infra.KindNotFound), usecase.ErrLedgerNotFound)
	default:
		return nil, unavailable("unexpected ledger response querying attestation", nil)
	}
}

func (c *Client) AttestToken(ctx context.Context, tokenHash, productID string) (string, error) {
	var ref refResponse
	status, err := c.do(ctx, http.MethodPost, "/tokens", attestTokenRequest{TokenHash: tokenHash, ProductID: productID}, &ref)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusCreated, http.StatusOK:
		return ref.Ref, nil
	case http.StatusConflict:
		return "", errs.Mark(infra.WrapRepoErr("token already attested", nil, infra.KindDuplicateKey), usecase.ErrAlreadyAttested)
	default:
		return "", unavailable("unexpected ledger response attesting token", nil)
	}
}

func (c *Client) VerifyToken(ctx context.Context, tokenHash string) (bool, error) {
	var st tokenStatusResponse
	status, err := c.do(ctx, http.MethodGet, "/tokens/"+tokenHash, nil, &st)
	if err != nil {
		return false, err
	}

	switch status {
	case http.StatusOK:
		return st.Attested, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, unavailable("unexpected ledger response verifying token", nil)
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, errs.Wrap(err, "failed to encode ledger request")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build ledger request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures are indistinguishable here; both
		// mean "no answer", not "no record".
		return 0, unavailable("ledger request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, nil
	}

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, unavailable("failed to decode ledger response", err)
		}
	}

	return resp.StatusCode, nil
}

func unavailable(msg string, err error) error {
	return errs.Mark(infra.WrapRepoErr(msg, err, infra.KindUnavailable), usecase.ErrLedgerUnavailable)
}
