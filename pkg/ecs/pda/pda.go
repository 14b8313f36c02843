// Package pda binds component records to their canonical program-derived
// addresses. A component record for an entity always lives at the address
// derived from [component_seed, entity_key]; the bump is the trailing seed
// component proving the address is off-curve.
package pda

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/solana"
)

var (
	ErrInvalidPda = errors.New("invalid pda")
)

// Derive computes the canonical (address, bump) for a component seed and
// entity key (a 32 byte account key for components, a little-endian id for
// registry entities) under the given program. Deterministic: repeated calls yield
// the same pair. Exhausting the bump search space surfaces as
// solana.ErrNoValidBump and must be treated as fatal by the caller.
func Derive(seed, entityKey []byte, programID ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddress(programID, seed, entityKey)
}

// Verify checks that candidate is the canonical address for the seed and
// entity key, returning the bump on success. The address is always
// re-derived; a caller supplied bump or address is never trusted. This is
// the sole authorization proof that an account is the one belonging to its
// entity, so it runs on every instruction touching a PDA-owned account.
func Verify(candidate ed25519.PublicKey, seed, entityKey []byte, programID ed25519.PublicKey) (uint8, error) {
	expected, bump, err := Derive(seed, entityKey, programID)
	if err != nil {
		return 0, err
	}
	if !bytes.Equal(candidate, expected) {
		return 0, ErrInvalidPda
	}
	return bump, nil
}

// SignerSeeds packages the seed components, bump last, in the exact order
// Derive uses. The platform signing primitive authorizes writes "as" the PDA
// only when this order matches derivation byte for byte.
func SignerSeeds(seed, entityKey []byte, bump uint8) [][]byte {
	return [][]byte{seed, entityKey, {bump}}
}
