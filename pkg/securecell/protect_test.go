package securecell

import (
	"bytes"
	"errors"
	"testing"
)

func TestProtect_RoundTrip(t *testing.T) {
	master := testMaster()
	plaintext := []byte("token protect me")

	ctx, ciphertext, err := Protect(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if len(ctx) != ProtectedContextSize {
		t.Fatalf("context length = %d, want %d", len(ctx), ProtectedContextSize)
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext))
	}

	got, err := Unprotect(master, ctx, ciphertext)
	if err != nil {
		t.Fatalf("Unprotect: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestProtect_ProbabilisticWithoutInContext(t *testing.T) {
	master := testMaster()
	plaintext := []byte("same plaintext every time")

	ctx1, ct1, err := Protect(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	ctx2, ct2, err := Protect(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if bytes.Equal(ctx1, ctx2) || bytes.Equal(ct1, ct2) {
		t.Fatal("two protects of identical input produced identical output")
	}
}

func TestProtect_DeterministicWithInContext(t *testing.T) {
	master := testMaster()
	plaintext := []byte("deterministic protect")
	inContext := bytes.Repeat([]byte{0x11}, 32)

	ctx1, ct1, err := Protect(master, plaintext, inContext)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	ctx2, ct2, err := Protect(master, plaintext, inContext)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if !bytes.Equal(ctx1, ctx2) || !bytes.Equal(ct1, ct2) {
		t.Fatal("protect with identical in_context was not deterministic")
	}
}

// Token-protect mode has no integrity check: a tampered ciphertext
// decrypts without error to the wrong plaintext rather than failing,
// unlike Seal/Unseal.
func TestProtect_TamperingGoesUndetected(t *testing.T) {
	master := testMaster()
	plaintext := []byte("no integrity here")

	ctx, ciphertext, err := Protect(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0x01

	got, err := Unprotect(master, ctx, tampered)
	if err != nil {
		t.Fatalf("Unprotect returned an error for a tampered ciphertext, want silent wrong-plaintext: %v", err)
	}
	if bytes.Equal(got, plaintext) {
		t.Fatal("tampered ciphertext decrypted to the original plaintext")
	}
}

func TestProtect_WrongMasterSecretYieldsWrongPlaintext(t *testing.T) {
	master := testMaster()
	other := bytes.Repeat([]byte{0xEF}, 32)
	plaintext := []byte("masked by a different key")

	ctx, ciphertext, err := Protect(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	got, err := Unprotect(other, ctx, ciphertext)
	if err != nil {
		t.Fatalf("Unprotect: %v", err)
	}
	if bytes.Equal(got, plaintext) {
		t.Fatal("decrypting with the wrong master secret recovered the original plaintext")
	}
}

func TestProtect_RejectsEmptyInputs(t *testing.T) {
	master := testMaster()
	if _, _, err := Protect(nil, []byte("pt"), nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty master: got %v, want ErrInvalidParameter", err)
	}
	if _, _, err := Protect(master, nil, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty plaintext: got %v, want ErrInvalidParameter", err)
	}
}
