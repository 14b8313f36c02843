// Package delegation exposes the ownership preconditions of the ephemeral
// rollup delegation protocol. Only the account-ownership surface is modeled:
// a delegated component is temporarily owned by the delegation program, and
// the delegation program calls the owning program back with a reserved tag
// when handing the account back. The protocol itself is an external
// collaborator.
package delegation

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/golt-ecs/golt/pkg/ecs/instruction"
	"github.com/golt-ecs/golt/pkg/ecs/runtime"
)

// ProgramID is the delegation program address.
var ProgramID = ed25519.PublicKey(mustBase58Decode("DELeGGvXpWV2fqJUhqcF5ZSYMS4JTLjteaAMARRSaeSh"))

// IsDelegated reports whether the account is currently owned by the
// delegation program, the precondition for rollup-side processing.
func IsDelegated(account *runtime.AccountInfo) bool {
	return bytes.Equal(account.Owner, ProgramID)
}

// IsUndelegateCallback reports whether instruction data is the delegation
// program's undelegate callback.
func IsUndelegateCallback(data []byte) bool {
	return len(data) > 0 && data[0] == instruction.TagUndelegateCallback
}

// Seeds returns the seed components a component's delegation is keyed by,
// matching the component's own PDA derivation (bump excluded).
func Seeds(componentSeed []byte, entityKey ed25519.PublicKey) [][]byte {
	return [][]byte{componentSeed, entityKey}
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
