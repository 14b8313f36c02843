// Package registry is the entity registry reference program: it mints
// unique entities as PDA records keyed by a 64 bit id, and lets their owner
// transfer or deactivate them. Components attach to entities by deriving
// their own PDAs from the entity key.
package registry

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrInvalidInstruction = errors.New("unexpected instruction data")
	ErrUnauthorized       = errors.New("signer is not the entity owner")
	ErrEntityNotActive    = errors.New("entity is not active")
)

var (
	// todo: setup real program address
	PROGRAM_ADDRESS = mustBase58Decode("DvaXvkjyf1M14PXwrBjzQUvNVuLhLTeb8C6W9xa8pwgJ")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
