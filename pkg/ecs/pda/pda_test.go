package pda

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golt-ecs/golt/pkg/solana"
)

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := range keys {
		pub, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = pub
	}
	return keys
}

func TestDeriveDeterminism(t *testing.T) {
	keys := generateKeys(t, 2)
	entity, programID := keys[0], keys[1]

	addrA, bumpA, err := Derive([]byte("health"), entity, programID)
	require.NoError(t, err)
	addrB, bumpB, err := Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	assert.Equal(t, addrA, addrB)
	assert.Equal(t, bumpA, bumpB)

	// Different seed or entity moves the address.
	other, _, err := Derive([]byte("mana"), entity, programID)
	require.NoError(t, err)
	assert.NotEqual(t, addrA, other)
}

func TestVerify(t *testing.T) {
	keys := generateKeys(t, 3)
	entity, programID, imposter := keys[0], keys[1], keys[2]

	addr, bump, err := Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	got, err := Verify(addr, []byte("health"), entity, programID)
	require.NoError(t, err)
	assert.Equal(t, bump, got)

	_, err = Verify(imposter, []byte("health"), entity, programID)
	assert.ErrorIs(t, err, ErrInvalidPda)

	// Right address under the wrong seed is rejected too.
	_, err = Verify(addr, []byte("mana"), entity, programID)
	assert.ErrorIs(t, err, ErrInvalidPda)
}

func TestSignerSeedsOrder(t *testing.T) {
	keys := generateKeys(t, 2)
	entity, programID := keys[0], keys[1]

	addr, bump, err := Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	seeds := SignerSeeds([]byte("health"), entity, bump)
	require.Len(t, seeds, 3)
	assert.Equal(t, []byte("health"), seeds[0])
	assert.Equal(t, []byte(entity), seeds[1])
	assert.Equal(t, []byte{bump}, seeds[2])

	// The packaged seeds must reproduce the derived address exactly.
	direct, err := solana.CreateProgramAddress(programID, seeds...)
	require.NoError(t, err)
	assert.Equal(t, addr, direct)
}
