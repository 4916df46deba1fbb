package primitive

import (
	"bytes"
	"testing"
)

func TestDerive_Deterministic(t *testing.T) {
	master := []byte("a sufficiently long master secret")
	ctx := []byte{0, 0, 0, 0, 0, 0, 0, 5}

	a, err := Derive(master, "test label", ctx, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := Derive(master, "test label", ctx, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("Derive is not deterministic for identical inputs")
	}
}

func TestDerive_LabelAndContextDistinguished(t *testing.T) {
	master := []byte("another master secret")

	a, err := Derive(master, "label-a", []byte{1}, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	b, err := Derive(master, "label-b", []byte{1}, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("different labels produced identical output")
	}

	c, err := Derive(master, "label-a", []byte{2}, 32)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Fatal("different contexts produced identical output")
	}
}

func TestDerive_RejectsEmptyInputs(t *testing.T) {
	if _, err := Derive(nil, "label", []byte{1}, 32); err != ErrKDFInvalidInput {
		t.Errorf("empty master: got %v, want ErrKDFInvalidInput", err)
	}
	if _, err := Derive([]byte("master"), "label", nil, 32); err != ErrKDFInvalidInput {
		t.Errorf("empty context: got %v, want ErrKDFInvalidInput", err)
	}
}

func TestPBKDF2SHA256_Deterministic(t *testing.T) {
	salt := []byte("a salt value")
	a := PBKDF2SHA256([]byte("hunter2"), salt, PBKDF2IterationsMin, 32)
	b := PBKDF2SHA256([]byte("hunter2"), salt, PBKDF2IterationsMin, 32)
	if !bytes.Equal(a, b) {
		t.Fatal("PBKDF2SHA256 is not deterministic for identical inputs")
	}
	c := PBKDF2SHA256([]byte("hunter3"), salt, PBKDF2IterationsMin, 32)
	if bytes.Equal(a, c) {
		t.Fatal("different passphrases produced identical output")
	}
}
