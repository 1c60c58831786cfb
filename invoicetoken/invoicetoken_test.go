package invoicetoken

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestSignedRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Encode(42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	id, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestTamperedSignatureRejected(t *testing.T) {
	codec := NewCodec("test-secret")
	token, err := codec.Encode(42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	parts := strings.SplitN(token, ".", 2)
	sig := []byte(parts[1])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}

	if _, err := codec.Decode(parts[0] + "." + string(sig)); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected bad signature error, got %v", err)
	}
}

func TestTamperedPayloadRejected(t *testing.T) {
	codec := NewCodec("test-secret")
	token, err := codec.Encode(42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"id":43}`))
	parts := strings.SplitN(token, ".", 2)
	if _, err := codec.Decode(forged + "." + parts[1]); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected bad signature error, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := NewCodec("secret-a").Encode(42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := NewCodec("secret-b").Decode(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected bad signature error, got %v", err)
	}
}

func TestLegacyUnsignedForms(t *testing.T) {
	codec := NewCodec("irrelevant")

	for _, body := range []string{`{"id":42}`, `{"billId":42}`} {
		token := base64.RawURLEncoding.EncodeToString([]byte(body))
		id, err := codec.Decode(token)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", body, err)
		}
		if id != 42 {
			t.Fatalf("expected id 42, got %d", id)
		}
	}

	// Padded variant of the same payload must also resolve.
	padded := base64.URLEncoding.EncodeToString([]byte(`{"id":42}`))
	if id, err := codec.Decode(padded); err != nil || id != 42 {
		t.Fatalf("padded legacy token failed: id=%d err=%v", id, err)
	}
}

func TestMalformedTokensRejected(t *testing.T) {
	codec := NewCodec("test-secret")

	bad := []string{
		"",
		"!!!!",
		base64.RawURLEncoding.EncodeToString([]byte(`not json`)),
		base64.RawURLEncoding.EncodeToString([]byte(`{"id":0}`)),
		base64.RawURLEncoding.EncodeToString([]byte(`{"id":-5}`)),
		base64.RawURLEncoding.EncodeToString([]byte(`{}`)),
		"a.b.c",
	}
	for _, token := range bad {
		if _, err := codec.Decode(token); err == nil {
			t.Fatalf("expected error for token %q", token)
		}
	}
}

func TestMissingSecret(t *testing.T) {
	codec := NewCodec("")

	if _, err := codec.Encode(42); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected secret-missing on encode, got %v", err)
	}

	signed, err := NewCodec("test-secret").Encode(42)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if _, err := codec.Decode(signed); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("expected secret-missing on signed decode, got %v", err)
	}

	// The legacy unsigned form carries no signature and still resolves.
	legacy := base64.RawURLEncoding.EncodeToString([]byte(`{"id":42}`))
	if id, err := codec.Decode(legacy); err != nil || id != 42 {
		t.Fatalf("legacy decode without secret failed: id=%d err=%v", id, err)
	}
}
