package runtime

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/solana"
)

var (
	ErrInsufficientFunds  = errors.New("payer has insufficient funds")
	ErrAccountInUse       = errors.New("account already in use")
	ErrBadSignerSeeds     = errors.New("signer seeds do not derive the account address")
	ErrMissingPayerSigner = errors.New("payer did not sign")
)

// SystemHost is the platform surface the lifecycle helper depends on:
// account allocation and the rent schedule. On chain these are the system
// program and the rent sysvar.
type SystemHost interface {
	// CreateAccount atomically funds and allocates newAccount with space
	// bytes owned by owner, authorized by signerSeeds on behalf of the
	// owning program. It fails wholesale; on error nothing changed.
	CreateAccount(payer, newAccount *AccountInfo, lamports, space uint64, owner ed25519.PublicKey, signerSeeds [][]byte) error

	// Rent returns the platform rent schedule.
	Rent() solana.Rent
}

// Ledger is an in-memory SystemHost with the platform's allocation rules:
// the payer must have signed and hold the funds, the target must be
// untouched, and a PDA target must be proven by signer seeds that re-derive
// its address under the owning program.
type Ledger struct {
	rent solana.Rent
}

func NewLedger() *Ledger {
	return &Ledger{rent: solana.DefaultRent()}
}

func (l *Ledger) Rent() solana.Rent { return l.rent }

func (l *Ledger) CreateAccount(payer, newAccount *AccountInfo, lamports, space uint64, owner ed25519.PublicKey, signerSeeds [][]byte) error {
	if !payer.IsSigner {
		return ErrMissingPayerSigner
	}
	if payer.Lamports < lamports {
		return ErrInsufficientFunds
	}
	if len(newAccount.Data) != 0 || newAccount.Lamports != 0 {
		return ErrAccountInUse
	}

	derived, err := solana.CreateProgramAddress(owner, signerSeeds...)
	if err != nil {
		return errors.Wrap(err, "failed to derive signer address")
	}
	if !bytes.Equal(derived, newAccount.Key) {
		return ErrBadSignerSeeds
	}

	payer.Lamports -= lamports
	newAccount.Lamports += lamports
	newAccount.Owner = append(ed25519.PublicKey(nil), owner...)
	newAccount.Data = make([]byte, space)
	return nil
}
