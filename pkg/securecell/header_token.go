package securecell

import (
	"encoding/binary"
	"fmt"
)

// tokenHeader is the 12-byte fixed prefix of a token-protect context,
// little-endian on the wire:
//
//	offset 0 : uint32 alg
//	offset 4 : uint32 ivLength
//	offset 8 : uint32 messageLength
//
// The original implementation this protocol is derived from writes 12
// (the AEAD IV length, not the stream IV length) into ivLength here,
// and a reader that trusts the field ends up reading a 12-byte IV where
// a 16-byte one was written. This implementation writes the true IV
// length, 16. Unprotect takes the IV length from this field, so a
// context declaring any value other than 16 is rejected by the stream
// driver.
type tokenHeader struct {
	alg           uint32
	ivLength      uint32
	messageLength uint32
}

func newTokenHeader(messageLength int) tokenHeader {
	return tokenHeader{
		alg:           algStream,
		ivLength:      protectedIVSize,
		messageLength: uint32(messageLength),
	}
}

func (h tokenHeader) encode(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.alg)
	binary.LittleEndian.PutUint32(buf[4:8], h.ivLength)
	binary.LittleEndian.PutUint32(buf[8:12], h.messageLength)
}

func decodeTokenHeader(ctx []byte) (tokenHeader, error) {
	if len(ctx) < protectedHeaderSize {
		return tokenHeader{}, fmt.Errorf("%w: protected context too short for header", ErrInvalidParameter)
	}
	return tokenHeader{
		alg:           binary.LittleEndian.Uint32(ctx[0:4]),
		ivLength:      binary.LittleEndian.Uint32(ctx[4:8]),
		messageLength: binary.LittleEndian.Uint32(ctx[8:12]),
	}, nil
}
