package schema

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxRecordSize bounds a record to the platform's account data limit.
const MaxRecordSize = 10 * 1024 * 1024

var (
	ErrNoFields       = errors.New("schema has no fields")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrBadFieldSize   = errors.New("field has invalid size")
	ErrBadBumpField   = errors.New("bump field must be a single byte")
	ErrMultipleBumps  = errors.New("schema declares more than one bump field")
	ErrRecordTooLarge = errors.New("record exceeds maximum account size")
)

// Kind enumerates the primitive field encodings.
type Kind uint8

const (
	KindU8 Kind = iota
	KindI8
	KindBool
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindKey
	KindBytes
)

var kindSizes = map[Kind]int{
	KindU8:   1,
	KindI8:   1,
	KindBool: 1,
	KindU16:  2,
	KindI16:  2,
	KindU32:  4,
	KindI32:  4,
	KindU64:  8,
	KindI64:  8,
	KindU128: 16,
	KindI128: 16,
	KindKey:  32,
}

var kindNames = map[Kind]string{
	KindU8:   "u8",
	KindI8:   "i8",
	KindBool: "bool",
	KindU16:  "u16",
	KindI16:  "i16",
	KindU32:  "u32",
	KindI32:  "i32",
	KindU64:  "u64",
	KindI64:  "i64",
	KindU128: "u128",
	KindI128: "i128",
	KindKey:  "pubkey",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k == KindBytes {
		return "bytes"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// KindFromString maps a config field type to a Kind. KindBytes is not
// reachable from here; fixed arrays are declared with Bytes().
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Field describes one record member. Offset is assigned when the schema is
// built and is relative to the start of the account data, discriminator
// included.
type Field struct {
	Name   string
	Kind   Kind
	Len    int // element count for KindBytes, 0 otherwise
	IsBump bool

	offset int
	size   int
}

// Offset returns the field's byte offset within the packed record.
func (f Field) Offset() int { return f.offset }

// Size returns the field's encoded size in bytes.
func (f Field) Size() int { return f.size }

func (f Field) resolveSize() int {
	if f.Kind == KindBytes {
		return f.Len
	}
	return kindSizes[f.Kind]
}

// NewField declares a primitive field.
func NewField(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// Bytes declares a fixed size byte array field.
func Bytes(name string, length int) Field {
	return Field{Name: name, Kind: KindBytes, Len: length}
}

// Bump declares the single byte PDA bump field.
func Bump(name string) Field {
	return Field{Name: name, Kind: KindU8, IsBump: true}
}

// Schema is an immutable, fully laid out record description. Build one with
// New; the zero value is not usable.
type Schema struct {
	name          string
	seed          []byte
	discriminator [DiscriminatorSize]byte
	fields        []Field
	byName        map[string]int
	totalSize     int
	bumpIndex     int
}

// New lays out a record schema. Offsets are assigned in a single forward
// pass starting after the discriminator; fields keep their declared order
// with no padding.
func New(name string, seed []byte, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	s := &Schema{
		name:          name,
		seed:          append([]byte(nil), seed...),
		discriminator: Discriminator(seed),
		fields:        make([]Field, 0, len(fields)),
		byName:        make(map[string]int, len(fields)),
		bumpIndex:     -1,
	}

	offset := DiscriminatorSize
	for _, f := range fields {
		if _, exists := s.byName[f.Name]; exists {
			return nil, errors.Wrap(ErrDuplicateField, f.Name)
		}

		f.size = f.resolveSize()
		if f.size <= 0 {
			return nil, errors.Wrap(ErrBadFieldSize, f.Name)
		}
		if f.IsBump {
			if f.size != 1 {
				return nil, errors.Wrap(ErrBadBumpField, f.Name)
			}
			if s.bumpIndex >= 0 {
				return nil, errors.Wrap(ErrMultipleBumps, f.Name)
			}
			s.bumpIndex = len(s.fields)
		}

		// Checked before adding so a huge Bytes length cannot wrap the
		// offset; offset never exceeds MaxRecordSize, so the subtraction
		// is safe.
		if f.size > MaxRecordSize-offset {
			return nil, errors.Wrapf(ErrRecordTooLarge, "%s: field %s", name, f.Name)
		}
		f.offset = offset
		offset += f.size

		s.byName[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	s.totalSize = offset
	return s, nil
}

// MustNew is New for statically known schemas.
func MustNew(name string, seed []byte, fields ...Field) *Schema {
	s, err := New(name, seed, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Name() string { return s.name }

// Seed returns the PDA seed prefix, also the discriminator input.
func (s *Schema) Seed() []byte {
	return append([]byte(nil), s.seed...)
}

func (s *Schema) Discriminator() [DiscriminatorSize]byte { return s.discriminator }

// TotalSize is the full account footprint: discriminator plus all fields.
func (s *Schema) TotalSize() int { return s.totalSize }

// Fields returns the laid out fields in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field looks a field up by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// BumpField returns the designated bump field, if declared.
func (s *Schema) BumpField() (Field, bool) {
	if s.bumpIndex < 0 {
		return Field{}, false
	}
	return s.fields[s.bumpIndex], true
}
