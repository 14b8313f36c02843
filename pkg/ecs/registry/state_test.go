package registry

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golt-ecs/golt/pkg/ecs/codec"
)

func TestEntityLayout(t *testing.T) {
	assert.Equal(t, 56, EntitySize)
	assert.Equal(t, [8]byte{'e', 'n', 't', 'i', 't', 'y', 0, 0}, EntitySchema.Discriminator())
}

func TestEntityRoundTrip(t *testing.T) {
	owner, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	entity := NewEntity(42, owner, 254)
	assert.True(t, entity.Active)

	data := make([]byte, EntitySize)
	require.NoError(t, entity.Marshal(data))

	assert.Equal(t, []byte("entity\x00\x00"), data[:8])
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, data[8:16])
	assert.Equal(t, []byte(owner), data[16:48])
	assert.Equal(t, byte(1), data[48])
	assert.Equal(t, byte(254), data[49])
	assert.Equal(t, make([]byte, 6), data[50:56])

	var decoded Entity
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, *entity, decoded)
}

func TestEntityUnmarshalTooShort(t *testing.T) {
	owner, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	data := make([]byte, EntitySize)
	require.NoError(t, NewEntity(1, owner, 255).Marshal(data))

	var decoded Entity
	assert.ErrorIs(t, decoded.Unmarshal(data[:55]), codec.ErrTooShort)
}

func TestEntityUnmarshalWrongDiscriminator(t *testing.T) {
	owner, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	data := make([]byte, EntitySize)
	require.NoError(t, NewEntity(1, owner, 255).Marshal(data))
	copy(data, "health\x00\x00")

	var decoded Entity
	assert.ErrorIs(t, decoded.Unmarshal(data), codec.ErrWrongDiscriminator)
}

func TestGetEntityAddress(t *testing.T) {
	a1, b1, err := GetEntityAddress(&GetEntityAddressArgs{EntityId: 7})
	require.NoError(t, err)
	a2, b2, err := GetEntityAddress(&GetEntityAddressArgs{EntityId: 7})
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	other, _, err := GetEntityAddress(&GetEntityAddressArgs{EntityId: 8})
	require.NoError(t, err)
	assert.NotEqual(t, a1, other)
}
