package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminator(t *testing.T) {
	assert.Equal(t, [8]byte{'h', 'e', 'a', 'l', 't', 'h', 0, 0}, Discriminator([]byte("health")))
	assert.Equal(t, [8]byte{'e', 'n', 't', 'i', 't', 'y', 0, 0}, Discriminator([]byte("entity")))
	assert.Equal(t, [8]byte{}, Discriminator(nil))

	// Seeds beyond 8 bytes truncate.
	assert.Equal(t, Discriminator([]byte("inventory")), Discriminator([]byte("inventory_v2")))
}

func TestSchemaLayout(t *testing.T) {
	s, err := New("Health", []byte("health"),
		NewField("entity", KindKey),
		NewField("current", KindU32),
		NewField("max", KindU32),
		Bump("bump"),
	)
	require.NoError(t, err)

	assert.Equal(t, 8+32+4+4+1, s.TotalSize())
	assert.Equal(t, Discriminator([]byte("health")), s.Discriminator())

	fields := s.Fields()
	require.Len(t, fields, 4)
	assert.Equal(t, 8, fields[0].Offset())
	assert.Equal(t, 40, fields[1].Offset())
	assert.Equal(t, 44, fields[2].Offset())
	assert.Equal(t, 48, fields[3].Offset())

	// Offsets are strictly increasing and non-overlapping.
	next := 8
	for _, f := range fields {
		assert.Equal(t, next, f.Offset())
		next += f.Size()
	}
	assert.Equal(t, s.TotalSize(), next)

	bump, ok := s.BumpField()
	require.True(t, ok)
	assert.Equal(t, "bump", bump.Name)
	assert.Equal(t, 1, bump.Size())
}

func TestSchemaEntityLayout(t *testing.T) {
	s, err := New("Entity", []byte("entity"),
		NewField("id", KindU64),
		NewField("owner", KindKey),
		NewField("active", KindBool),
		Bump("bump"),
		Bytes("reserved", 6),
	)
	require.NoError(t, err)
	assert.Equal(t, 56, s.TotalSize())
}

func TestSchemaValidation(t *testing.T) {
	_, err := New("Empty", []byte("empty"))
	assert.ErrorIs(t, err, ErrNoFields)

	_, err = New("Dup", []byte("dup"),
		NewField("a", KindU8),
		NewField("a", KindU16),
	)
	assert.ErrorIs(t, err, ErrDuplicateField)

	_, err = New("BadBump", []byte("bad"),
		Field{Name: "bump", Kind: KindU32, IsBump: true},
	)
	assert.ErrorIs(t, err, ErrBadBumpField)

	_, err = New("TwoBumps", []byte("two"),
		Bump("a"),
		Bump("b"),
	)
	assert.ErrorIs(t, err, ErrMultipleBumps)

	_, err = New("ZeroBytes", []byte("zero"),
		Bytes("blob", 0),
	)
	assert.ErrorIs(t, err, ErrBadFieldSize)

	_, err = New("Huge", []byte("huge"),
		Bytes("blob", MaxRecordSize),
	)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestSchemaSizeLimit(t *testing.T) {
	// A full-size record is exactly representable.
	s, err := New("Max", []byte("max"),
		Bytes("blob", MaxRecordSize-DiscriminatorSize),
	)
	require.NoError(t, err)
	assert.Equal(t, MaxRecordSize, s.TotalSize())

	// One byte over, whether from a single field or accumulated.
	_, err = New("Over", []byte("over"),
		Bytes("blob", MaxRecordSize-DiscriminatorSize+1),
	)
	assert.ErrorIs(t, err, ErrRecordTooLarge)

	_, err = New("Accumulated", []byte("acc"),
		Bytes("blob", MaxRecordSize-DiscriminatorSize),
		NewField("extra", KindU8),
	)
	assert.ErrorIs(t, err, ErrRecordTooLarge)

	// A length large enough to wrap the offset must be rejected, not
	// produce a schema with a nonsense TotalSize.
	s, err = New("Wrap", []byte("wrap"),
		Bytes("blob", math.MaxInt),
	)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
	assert.Nil(t, s)

	_, err = New("WrapPair", []byte("wrap2"),
		Bytes("a", math.MaxInt/2),
		Bytes("b", math.MaxInt/2),
	)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestRegistryCollision(t *testing.T) {
	health := MustNew("Health", []byte("health"), NewField("current", KindU32))
	entity := MustNew("Entity", []byte("entity"), NewField("id", KindU64))

	r, err := NewRegistry(health, entity)
	require.NoError(t, err)

	got, err := r.Get("Health")
	require.NoError(t, err)
	assert.Equal(t, health, got)

	_, err = r.Get("Mana")
	assert.ErrorIs(t, err, ErrSchemaNotFound)

	// Same name rejected.
	err = r.Register(MustNew("Health", []byte("hp"), NewField("x", KindU8)))
	assert.ErrorIs(t, err, ErrSchemaExists)

	// Seeds sharing an 8 byte prefix collide.
	err = r.Register(MustNew("Inventory", []byte("inventory"), NewField("slots", KindU8)))
	require.NoError(t, err)
	err = r.Register(MustNew("InventoryV2", []byte("inventory_v2"), NewField("slots", KindU8)))
	assert.ErrorIs(t, err, ErrDiscriminatorCollision)
}

func TestRegistryIdentify(t *testing.T) {
	health := MustNew("Health", []byte("health"), NewField("current", KindU32))
	r, err := NewRegistry(health)
	require.NoError(t, err)

	data := make([]byte, health.TotalSize())
	discriminator := health.Discriminator()
	copy(data, discriminator[:])

	got, err := r.Identify(data)
	require.NoError(t, err)
	assert.Equal(t, health, got)

	_, err = r.Identify([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrSchemaNotFound)

	data[0] ^= 0xff
	_, err = r.Identify(data)
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}
