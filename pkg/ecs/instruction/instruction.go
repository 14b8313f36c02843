// Package instruction codecs the instruction byte layout: byte 0 is the
// variant tag, followed by tightly packed little-endian parameters in
// declaration order. Tags 253, 254 and 0xC4 are reserved for the delegation
// protocol and must not be assigned to program variants.
package instruction

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Reserved tags consumed by the delegation program.
const (
	TagDelegate           uint8 = 253
	TagUndelegate         uint8 = 254
	TagUndelegateCallback uint8 = 0xC4
)

var (
	ErrShortData   = errors.New("instruction data too short")
	ErrReservedTag = errors.New("tag is reserved for delegation")
)

// IsReservedTag reports whether a tag belongs to the delegation protocol.
func IsReservedTag(tag uint8) bool {
	return tag == TagDelegate || tag == TagUndelegate || tag == TagUndelegateCallback
}

// Tag returns the variant tag of raw instruction data.
func Tag(data []byte) (uint8, error) {
	if len(data) == 0 {
		return 0, ErrShortData
	}
	return data[0], nil
}

func ReadUint8(src []byte, dst *uint8, offset *int) error {
	if len(src) < *offset+1 {
		return ErrShortData
	}
	*dst = src[*offset]
	*offset += 1
	return nil
}

func ReadUint16(src []byte, dst *uint16, offset *int) error {
	if len(src) < *offset+2 {
		return ErrShortData
	}
	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
	return nil
}

func ReadUint32(src []byte, dst *uint32, offset *int) error {
	if len(src) < *offset+4 {
		return ErrShortData
	}
	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func ReadUint64(src []byte, dst *uint64, offset *int) error {
	if len(src) < *offset+8 {
		return ErrShortData
	}
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

func ReadKey(src []byte, dst *ed25519.PublicKey, offset *int) error {
	if len(src) < *offset+ed25519.PublicKeySize {
		return ErrShortData
	}
	*dst = make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
	return nil
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[*offset] = v
	*offset += 1
}

func PutUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}

func PutUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func PutUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func PutKey(dst []byte, v ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], v)
	*offset += ed25519.PublicKeySize
}
