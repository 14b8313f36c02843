package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"math"

	"github.com/jdgcs/ed25519/edwards25519"
	"github.com/pkg/errors"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
)

var (
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("max seed length exceeded")

	// ErrInvalidPublicKey indicates the derived address landed on the
	// ed25519 curve and therefore has an associated private key.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrNoValidBump indicates the full bump search space was exhausted
	// without producing an off-curve address.
	ErrNoValidBump = errors.New("no valid bump")
)

// CreateProgramAddress derives a program address from a program id and a set
// of seeds, mirroring the Solana SDK's CreateProgramAddress.
//
// Program addresses are public keys that _do not_ lie on the ed25519 curve,
// so no private key exists for them. If the program and seeds happen to
// produce a valid curve point, ErrInvalidPublicKey is returned and the caller
// must vary the seeds (typically via the bump).
func CreateProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, error) {
	if len(seeds) > maxSeeds {
		return nil, ErrTooManySeeds
	}

	h := sha256.New()
	for _, s := range seeds {
		if len(s) > maxSeedLength {
			return nil, ErrMaxSeedLengthExceeded
		}

		if _, err := h.Write(s); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	for _, v := range [][]byte{program, []byte("ProgramDerivedAddress")} {
		if _, err := h.Write(v); err != nil {
			return nil, errors.Wrap(err, "failed to hash seed")
		}
	}

	var pub [32]byte
	copy(pub[:], h.Sum(nil))

	// Reject the candidate if it decompresses to a valid EdwardsPoint,
	// matching the SDK's is_on_curve check. The x/crypto internals aren't
	// exported, so we use the same standalone edwards25519 implementation
	// the SDK check was verified against.
	var p edwards25519.ExtendedGroupElement
	if p.FromBytes(&pub) {
		return nil, ErrInvalidPublicKey
	}

	return pub[:], nil
}

// FindProgramAddress searches for the canonical program-derived address for
// the given seeds, mirroring the Solana SDK's FindProgramAddress. The search
// walks bump candidates downward from 255 and returns the first bump whose
// derived address is off-curve, along with that address.
func FindProgramAddress(program ed25519.PublicKey, seeds ...[]byte) (ed25519.PublicKey, uint8, error) {
	bump := []byte{math.MaxUint8}
	for i := 0; i <= math.MaxUint8; i++ {
		pub, err := CreateProgramAddress(program, append(seeds, bump)...)
		if err == nil {
			return pub, bump[0], nil
		}
		if err != ErrInvalidPublicKey {
			return nil, 0, err
		}

		bump[0]--
	}

	return nil, 0, ErrNoValidBump
}
