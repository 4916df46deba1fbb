package securecell

import "testing"

func TestSealedHeader_RoundTrip(t *testing.T) {
	h := newSealedHeader(123)
	buf := make([]byte, sealedHeaderSize)
	h.encode(buf)

	full := append(buf, make([]byte, sealedIVSize+sealedAADSize+sealedTagSize)...)
	got, err := decodeSealedHeader(full)
	if err != nil {
		t.Fatalf("decodeSealedHeader: %v", err)
	}
	if got != h {
		t.Fatalf("decoded header = %+v, want %+v", got, h)
	}
}

func TestDecodeSealedHeader_TooShort(t *testing.T) {
	if _, err := decodeSealedHeader(make([]byte, sealedHeaderSize-1)); err == nil {
		t.Fatal("expected an error decoding a too-short sealed context")
	}
}

func TestTokenHeader_RoundTrip(t *testing.T) {
	h := newTokenHeader(456)
	buf := make([]byte, protectedHeaderSize)
	h.encode(buf)

	full := append(buf, make([]byte, protectedIVSize)...)
	got, err := decodeTokenHeader(full)
	if err != nil {
		t.Fatalf("decodeTokenHeader: %v", err)
	}
	if got != h {
		t.Fatalf("decoded header = %+v, want %+v", got, h)
	}
}

func TestDecodeTokenHeader_TooShort(t *testing.T) {
	if _, err := decodeTokenHeader(make([]byte, protectedHeaderSize-1)); err == nil {
		t.Fatal("expected an error decoding a too-short protected context")
	}
}
