package runtime

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/ecs/pda"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
	"github.com/golt-ecs/golt/pkg/solana"
)

var (
	ErrAlreadyInitialized = errors.New("account already initialized")
	ErrAllocationFailed   = errors.New("account allocation failed")
)

// CreateRecord allocates the on-chain record for a schema at its canonical
// PDA: it verifies the target is untouched, re-derives the PDA from the seed
// components (the supplied address is never trusted), pays rent for the
// schema's full footprint, and stamps the discriminator. Field values beyond
// the discriminator are the caller's to populate via the codec immediately
// after. There is no rollback here; the enclosing transaction's atomicity is
// the only undo.
func CreateRecord(host SystemHost, payer, target *AccountInfo, s *schema.Schema, programID ed25519.PublicKey, seedComponents ...[]byte) (uint8, error) {
	if len(target.Data) != 0 {
		return 0, ErrAlreadyInitialized
	}

	expected, bump, err := solana.FindProgramAddress(programID, seedComponents...)
	if err != nil {
		return 0, err
	}
	if !bytes.Equal(target.Key, expected) {
		return 0, pda.ErrInvalidPda
	}

	size := uint64(s.TotalSize())
	lamports := host.Rent().MinimumBalance(size)

	signerSeeds := append(append([][]byte{}, seedComponents...), []byte{bump})
	if err := host.CreateAccount(payer, target, lamports, size, programID, signerSeeds); err != nil {
		return 0, errors.Wrap(ErrAllocationFailed, err.Error())
	}

	discriminator := s.Discriminator()
	copy(target.Data[:schema.DiscriminatorSize], discriminator[:])
	return bump, nil
}
