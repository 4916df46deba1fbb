package securecell

import (
	"bytes"
	"errors"
	"testing"
)

func testMaster() []byte {
	return bytes.Repeat([]byte{0xAB}, 32)
}

func TestSeal_RoundTrip(t *testing.T) {
	master := testMaster()
	plaintext := []byte("hello")

	ctx, ciphertext, err := Seal(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(ctx) != SealedContextSize {
		t.Fatalf("context length = %d, want %d", len(ctx), SealedContextSize)
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext))
	}

	got, err := Unseal(master, ctx, ciphertext)
	if err != nil {
		t.Fatalf("Unseal: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestSeal_ProbabilisticWithoutInContext(t *testing.T) {
	master := testMaster()
	plaintext := []byte("same plaintext every time")

	ctx1, ct1, err := Seal(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	ctx2, ct2, err := Seal(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if bytes.Equal(ctx1, ctx2) {
		t.Fatal("two seals of identical input produced identical contexts")
	}
	if bytes.Equal(ct1, ct2) {
		t.Fatal("two seals of identical input produced identical ciphertexts")
	}
}

func TestSeal_BitFlipDetected(t *testing.T) {
	master := testMaster()
	plaintext := []byte("tamper me")

	ctx, ciphertext, err := Seal(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	t.Run("ciphertext", func(t *testing.T) {
		tampered := append([]byte(nil), ciphertext...)
		tampered[0] ^= 0x01
		if _, err := Unseal(master, ctx, tampered); !errors.Is(err, ErrFail) {
			t.Fatalf("got %v, want ErrFail", err)
		}
	})

	t.Run("iv", func(t *testing.T) {
		tampered := append(Context(nil), ctx...)
		tampered[sealedHeaderSize] ^= 0x01
		if _, err := Unseal(master, tampered, ciphertext); !errors.Is(err, ErrFail) {
			t.Fatalf("got %v, want ErrFail", err)
		}
	})

	t.Run("tag", func(t *testing.T) {
		tampered := append(Context(nil), ctx...)
		tampered[len(tampered)-1] ^= 0x01
		if _, err := Unseal(master, tampered, ciphertext); !errors.Is(err, ErrFail) {
			t.Fatalf("got %v, want ErrFail", err)
		}
	})
}

func TestSeal_WrongMasterSecretFails(t *testing.T) {
	master := testMaster()
	other := bytes.Repeat([]byte{0xCD}, 32)
	plaintext := []byte("secret payload")

	ctx, ciphertext, err := Seal(master, plaintext, nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Unseal(other, ctx, ciphertext); !errors.Is(err, ErrFail) {
		t.Fatalf("got %v, want ErrFail", err)
	}
}

func TestSeal_DeterministicWithInContext(t *testing.T) {
	master := testMaster()
	plaintext := []byte("deterministic seal")
	inContext := bytes.Repeat([]byte{0x42}, 32)

	ctx1, ct1, err := Seal(master, plaintext, inContext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	ctx2, ct2, err := Seal(master, plaintext, inContext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if !bytes.Equal(ctx1, ctx2) || !bytes.Equal(ct1, ct2) {
		t.Fatal("seal with identical in_context was not deterministic")
	}
}

func TestSeal_RejectsEmptyInputs(t *testing.T) {
	master := testMaster()
	if _, _, err := Seal(nil, []byte("pt"), nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty master: got %v, want ErrInvalidParameter", err)
	}
	if _, _, err := Seal(master, nil, nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty plaintext: got %v, want ErrInvalidParameter", err)
	}
}

func TestUnseal_ShortCiphertextRejected(t *testing.T) {
	master := testMaster()
	ctx, ciphertext, err := Seal(master, []byte("hello world"), nil)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Unseal(master, ctx, ciphertext[:3]); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("got %v, want ErrInvalidParameter", err)
	}
}
