package registry

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/golt-ecs/golt/pkg/solana"
)

type GetEntityAddressArgs struct {
	EntityId uint64
}

// GetEntityAddress derives the canonical PDA for an entity id.
func GetEntityAddress(args *GetEntityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		PROGRAM_ID,
		EntitySeed,
		entityIdSeed(args.EntityId),
	)
}

func entityIdSeed(id uint64) []byte {
	seed := make([]byte, 8)
	binary.LittleEndian.PutUint64(seed, id)
	return seed
}
