package instruction

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservedTags(t *testing.T) {
	assert.True(t, IsReservedTag(253))
	assert.True(t, IsReservedTag(254))
	assert.True(t, IsReservedTag(0xC4))
	assert.False(t, IsReservedTag(0))
	assert.False(t, IsReservedTag(1))
}

func TestTag(t *testing.T) {
	tag, err := Tag([]byte{2, 0xff})
	require.NoError(t, err)
	assert.EqualValues(t, 2, tag)

	_, err = Tag(nil)
	assert.ErrorIs(t, err, ErrShortData)
}

func TestReadWriteRoundTrip(t *testing.T) {
	key, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	data := make([]byte, 1+2+4+8+32)
	offset := 0
	PutUint8(data, 0xab, &offset)
	PutUint16(data, 0xbeef, &offset)
	PutUint32(data, 0xdeadbeef, &offset)
	PutUint64(data, 1<<60, &offset)
	PutKey(data, key, &offset)
	require.Equal(t, len(data), offset)

	var (
		a uint8
		b uint16
		c uint32
		d uint64
		k ed25519.PublicKey
	)
	offset = 0
	require.NoError(t, ReadUint8(data, &a, &offset))
	require.NoError(t, ReadUint16(data, &b, &offset))
	require.NoError(t, ReadUint32(data, &c, &offset))
	require.NoError(t, ReadUint64(data, &d, &offset))
	require.NoError(t, ReadKey(data, &k, &offset))

	assert.EqualValues(t, 0xab, a)
	assert.EqualValues(t, 0xbeef, b)
	assert.EqualValues(t, 0xdeadbeef, c)
	assert.EqualValues(t, uint64(1)<<60, d)
	assert.Equal(t, key, k)
	assert.Equal(t, len(data), offset)

	// Little-endian on the wire.
	assert.Equal(t, []byte{0xef, 0xbe}, data[1:3])
}

func TestReadShortData(t *testing.T) {
	var v uint64
	offset := 0
	assert.ErrorIs(t, ReadUint64([]byte{1, 2, 3}, &v, &offset), ErrShortData)
	assert.Equal(t, 0, offset)

	var k ed25519.PublicKey
	assert.ErrorIs(t, ReadKey(make([]byte, 31), &k, &offset), ErrShortData)
}
