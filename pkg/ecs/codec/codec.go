// Package codec packs and unpacks fixed layout, discriminator tagged
// records. It is the single implementation of the byte layout shared by the
// entity registry, generated component bindings, and hand written state:
// bytes [0,8) hold the schema discriminator, every field sits at its schema
// assigned offset, multi byte integers are little-endian, booleans are one
// byte (zero is false), keys and fixed arrays are raw copies.
package codec

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

var (
	ErrTooShort           = errors.New("buffer too short for record")
	ErrWrongDiscriminator = errors.New("wrong account discriminator")
)

// Unpack validates data against the schema and materializes a record. The
// returned record owns its values; data is only read for the duration of the
// call. Either the whole record decodes or nothing does.
func Unpack(s *schema.Schema, data []byte) (*Record, error) {
	if len(data) < s.TotalSize() {
		return nil, ErrTooShort
	}

	discriminator := s.Discriminator()
	if !bytes.Equal(data[:schema.DiscriminatorSize], discriminator[:]) {
		return nil, ErrWrongDiscriminator
	}

	r := NewRecord(s)
	for _, f := range s.Fields() {
		r.values[f.Name] = decodeField(f, data[f.Offset():])
	}
	return r, nil
}

// Pack writes the discriminator and every field into data at their schema
// offsets. Exactly TotalSize bytes are covered; anything beyond is left
// untouched. An undersized destination returns ErrTooShort rather than
// faulting, keeping pack symmetric with unpack.
func Pack(r *Record, data []byte) error {
	s := r.schema
	if len(data) < s.TotalSize() {
		return ErrTooShort
	}

	discriminator := s.Discriminator()
	copy(data[:schema.DiscriminatorSize], discriminator[:])

	for _, f := range s.Fields() {
		encodeField(f, r.values[f.Name], data[f.Offset():])
	}
	return nil
}

func decodeField(f schema.Field, src []byte) any {
	switch f.Kind {
	case schema.KindU8:
		return src[0]
	case schema.KindI8:
		return int8(src[0])
	case schema.KindBool:
		return src[0] != 0
	case schema.KindU16:
		return binary.LittleEndian.Uint16(src)
	case schema.KindI16:
		return int16(binary.LittleEndian.Uint16(src))
	case schema.KindU32:
		return binary.LittleEndian.Uint32(src)
	case schema.KindI32:
		return int32(binary.LittleEndian.Uint32(src))
	case schema.KindU64:
		return binary.LittleEndian.Uint64(src)
	case schema.KindI64:
		return int64(binary.LittleEndian.Uint64(src))
	case schema.KindU128, schema.KindI128:
		var v [16]byte
		copy(v[:], src)
		return v
	case schema.KindKey:
		key := make(ed25519.PublicKey, ed25519.PublicKeySize)
		copy(key, src)
		return key
	case schema.KindBytes:
		b := make([]byte, f.Size())
		copy(b, src)
		return b
	default:
		return nil
	}
}

func encodeField(f schema.Field, v any, dst []byte) {
	switch f.Kind {
	case schema.KindU8:
		dst[0] = v.(uint8)
	case schema.KindI8:
		dst[0] = uint8(v.(int8))
	case schema.KindBool:
		if v.(bool) {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
	case schema.KindU16:
		binary.LittleEndian.PutUint16(dst, v.(uint16))
	case schema.KindI16:
		binary.LittleEndian.PutUint16(dst, uint16(v.(int16)))
	case schema.KindU32:
		binary.LittleEndian.PutUint32(dst, v.(uint32))
	case schema.KindI32:
		binary.LittleEndian.PutUint32(dst, uint32(v.(int32)))
	case schema.KindU64:
		binary.LittleEndian.PutUint64(dst, v.(uint64))
	case schema.KindI64:
		binary.LittleEndian.PutUint64(dst, uint64(v.(int64)))
	case schema.KindU128, schema.KindI128:
		raw := v.([16]byte)
		copy(dst, raw[:])
	case schema.KindKey:
		copy(dst, v.(ed25519.PublicKey))
	case schema.KindBytes:
		copy(dst[:f.Size()], v.([]byte))
	}
}
