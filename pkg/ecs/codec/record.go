package codec

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrWrongValueType = errors.New("wrong value type for field")
)

// Record is one materialized instance of a schema. It owns its values and
// never aliases the buffer it was unpacked from.
//
// Field values use the Go type matching the field kind: uint8/int8, bool,
// uint16/int16, uint32/int32, uint64/int64, [16]byte for 128 bit integers
// (little-endian raw), ed25519.PublicKey for keys, and []byte for fixed
// arrays.
type Record struct {
	schema *schema.Schema
	values map[string]any
}

// NewRecord returns a record with every field set to its zero value.
func NewRecord(s *schema.Schema) *Record {
	r := &Record{
		schema: s,
		values: make(map[string]any),
	}
	for _, f := range s.Fields() {
		r.values[f.Name] = zeroValue(f)
	}
	return r
}

func zeroValue(f schema.Field) any {
	switch f.Kind {
	case schema.KindU8:
		return uint8(0)
	case schema.KindI8:
		return int8(0)
	case schema.KindBool:
		return false
	case schema.KindU16:
		return uint16(0)
	case schema.KindI16:
		return int16(0)
	case schema.KindU32:
		return uint32(0)
	case schema.KindI32:
		return int32(0)
	case schema.KindU64:
		return uint64(0)
	case schema.KindI64:
		return int64(0)
	case schema.KindU128, schema.KindI128:
		return [16]byte{}
	case schema.KindKey:
		return make(ed25519.PublicKey, ed25519.PublicKeySize)
	case schema.KindBytes:
		return make([]byte, f.Size())
	default:
		return nil
	}
}

// Schema returns the schema this record is an instance of.
func (r *Record) Schema() *schema.Schema { return r.schema }

// Set assigns a field value, enforcing the kind's Go type.
func (r *Record) Set(name string, v any) error {
	f, ok := r.schema.Field(name)
	if !ok {
		return errors.Wrap(ErrUnknownField, name)
	}
	if !valueMatches(f, v) {
		return errors.Wrapf(ErrWrongValueType, "%s (%s)", name, f.Kind)
	}
	r.values[name] = ownedValue(f, v)
	return nil
}

// MustSet is Set for values known to match the schema.
func (r *Record) MustSet(name string, v any) *Record {
	if err := r.Set(name, v); err != nil {
		panic(err)
	}
	return r
}

func valueMatches(f schema.Field, v any) bool {
	switch f.Kind {
	case schema.KindU8:
		_, ok := v.(uint8)
		return ok
	case schema.KindI8:
		_, ok := v.(int8)
		return ok
	case schema.KindBool:
		_, ok := v.(bool)
		return ok
	case schema.KindU16:
		_, ok := v.(uint16)
		return ok
	case schema.KindI16:
		_, ok := v.(int16)
		return ok
	case schema.KindU32:
		_, ok := v.(uint32)
		return ok
	case schema.KindI32:
		_, ok := v.(int32)
		return ok
	case schema.KindU64:
		_, ok := v.(uint64)
		return ok
	case schema.KindI64:
		_, ok := v.(int64)
		return ok
	case schema.KindU128, schema.KindI128:
		_, ok := v.([16]byte)
		return ok
	case schema.KindKey:
		key, ok := v.(ed25519.PublicKey)
		return ok && len(key) == ed25519.PublicKeySize
	case schema.KindBytes:
		b, ok := v.([]byte)
		return ok && len(b) == f.Size()
	default:
		return false
	}
}

func ownedValue(f schema.Field, v any) any {
	switch f.Kind {
	case schema.KindKey:
		return append(ed25519.PublicKey(nil), v.(ed25519.PublicKey)...)
	case schema.KindBytes:
		return append([]byte(nil), v.([]byte)...)
	default:
		return v
	}
}

// Get returns a field value, or false for an unknown field.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (r *Record) GetUint8(name string) uint8 {
	v, _ := r.values[name].(uint8)
	return v
}

func (r *Record) GetInt8(name string) int8 {
	v, _ := r.values[name].(int8)
	return v
}

func (r *Record) GetInt16(name string) int16 {
	v, _ := r.values[name].(int16)
	return v
}

func (r *Record) GetInt32(name string) int32 {
	v, _ := r.values[name].(int32)
	return v
}

func (r *Record) GetInt64(name string) int64 {
	v, _ := r.values[name].(int64)
	return v
}

func (r *Record) GetRaw128(name string) [16]byte {
	v, _ := r.values[name].([16]byte)
	return v
}

func (r *Record) GetBool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

func (r *Record) GetUint16(name string) uint16 {
	v, _ := r.values[name].(uint16)
	return v
}

func (r *Record) GetUint32(name string) uint32 {
	v, _ := r.values[name].(uint32)
	return v
}

func (r *Record) GetUint64(name string) uint64 {
	v, _ := r.values[name].(uint64)
	return v
}

func (r *Record) GetKey(name string) ed25519.PublicKey {
	v, _ := r.values[name].(ed25519.PublicKey)
	return v
}

func (r *Record) GetBytes(name string) []byte {
	v, _ := r.values[name].([]byte)
	return v
}
