// Package invoicetoken encodes and verifies tamper-evident references to a
// billing record id, so an unauthenticated party can retrieve one specific
// invoice. Two token shapes are supported: the signed payload.signature form
// and a legacy unsigned form kept for links issued before signing existed.
package invoicetoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var (
	// ErrSecretMissing means the signing secret is not configured. This is a
	// server configuration fault, never a silent fallback to unsigned mode.
	ErrSecretMissing = errors.New("invoice token secret is not configured")

	// ErrMalformed means the token cannot be parsed at all.
	ErrMalformed = errors.New("malformed invoice token")

	// ErrBadSignature means the payload parsed but the signature does not
	// verify.
	ErrBadSignature = errors.New("invalid invoice token signature")
)

// Codec signs and resolves invoice tokens. Construct it once at process start
// and inject it; the secret is captured at construction.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// payload accepts both historical field names.
type payload struct {
	ID     *int64 `json:"id,omitempty"`
	BillID *int64 `json:"billId,omitempty"`
}

// Encode produces the signed form: base64url(JSON{id}) "." base64url(HMAC).
func (c *Codec) Encode(id uint) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrSecretMissing
	}

	v := int64(id)
	raw, err := json.Marshal(payload{ID: &v})
	if err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(raw)
	return body + "." + c.sign(body), nil
}

// Decode resolves either token shape to the billing id. Invalid tokens are
// rejected, never defaulted.
func (c *Codec) Decode(token string) (uint, error) {
	if token == "" {
		return 0, ErrMalformed
	}

	if !strings.Contains(token, ".") {
		// Unsigned legacy form: base64url JSON with no integrity protection.
		return parseBody(token)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, ErrMalformed
	}
	if len(c.secret) == 0 {
		return 0, ErrSecretMissing
	}

	expected, err := decodeB64(c.sign(parts[0]))
	if err != nil {
		return 0, ErrBadSignature
	}
	provided, err := decodeB64(parts[1])
	if err != nil {
		return 0, ErrBadSignature
	}
	// hmac.Equal is constant time and false on length mismatch.
	if !hmac.Equal(expected, provided) {
		return 0, ErrBadSignature
	}

	return parseBody(parts[0])
}

func (c *Codec) sign(body string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func parseBody(body string) (uint, error) {
	raw, err := decodeB64(body)
	if err != nil {
		return 0, ErrMalformed
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, ErrMalformed
	}

	id := p.ID
	if id == nil {
		id = p.BillID
	}
	if id == nil || *id <= 0 {
		return 0, ErrMalformed
	}
	return uint(*id), nil
}

// decodeB64 accepts URL-safe base64 with or without padding.
func decodeB64(s string) ([]byte, error) {
	if raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return raw, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
