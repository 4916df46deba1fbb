package securecell

import (
	"encoding/binary"
	"fmt"
)

// sealedHeader is the 20-byte fixed prefix of a sealed (authenticated)
// container context, little-endian on the wire:
//
//	offset 0  : uint32 alg
//	offset 4  : uint32 ivLength
//	offset 8  : uint32 aadLength
//	offset 12 : uint32 authTagLength
//	offset 16 : uint32 messageLength
type sealedHeader struct {
	alg           uint32
	ivLength      uint32
	aadLength     uint32
	authTagLength uint32
	messageLength uint32
}

func newSealedHeader(messageLength int) sealedHeader {
	return sealedHeader{
		alg:           algAEAD,
		ivLength:      sealedIVSize,
		aadLength:     sealedAADSize,
		authTagLength: sealedTagSize,
		messageLength: uint32(messageLength),
	}
}

func (h sealedHeader) encode(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.alg)
	binary.LittleEndian.PutUint32(buf[4:8], h.ivLength)
	binary.LittleEndian.PutUint32(buf[8:12], h.aadLength)
	binary.LittleEndian.PutUint32(buf[12:16], h.authTagLength)
	binary.LittleEndian.PutUint32(buf[16:20], h.messageLength)
}

// decodeSealedHeader parses the fixed prefix of a sealed context. It
// only validates that the context is long enough to hold the prefix;
// field-consistency checks happen in Unseal, which is the only caller.
func decodeSealedHeader(ctx []byte) (sealedHeader, error) {
	if len(ctx) < sealedHeaderSize {
		return sealedHeader{}, fmt.Errorf("%w: sealed context too short for header", ErrInvalidParameter)
	}
	return sealedHeader{
		alg:           binary.LittleEndian.Uint32(ctx[0:4]),
		ivLength:      binary.LittleEndian.Uint32(ctx[4:8]),
		aadLength:     binary.LittleEndian.Uint32(ctx[8:12]),
		authTagLength: binary.LittleEndian.Uint32(ctx[12:16]),
		messageLength: binary.LittleEndian.Uint32(ctx[16:20]),
	}, nil
}
