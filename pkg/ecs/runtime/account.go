package runtime

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrNotSigner         = errors.New("account is not a signer")
	ErrNotWritable       = errors.New("account is not writable")
	ErrNotEnoughAccounts = errors.New("not enough accounts")
)

// AccountInfo is one account as presented to an instruction: its address,
// owning program, balance, raw data, and the transaction level signer and
// writable flags. The data buffer is exclusively borrowed for the duration
// of a single instruction; the host serializes writers, so processors can
// assume un-contended access and must not retain the slice across calls.
type AccountInfo struct {
	Key      ed25519.PublicKey
	Owner    ed25519.PublicKey
	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

func (a *AccountInfo) String() string {
	return fmt.Sprintf(
		"Account{key=%s,owner=%s,lamports=%d,data=%d bytes}",
		base58.Encode(a.Key),
		base58.Encode(a.Owner),
		a.Lamports,
		len(a.Data),
	)
}

// AccountContext walks the instruction's account list in declaration order,
// applying authorization checks as accounts are consumed.
type AccountContext struct {
	accounts []*AccountInfo
	index    int
}

func NewAccountContext(accounts []*AccountInfo) *AccountContext {
	return &AccountContext{accounts: accounts}
}

// Next returns the next account, advancing the cursor.
func (c *AccountContext) Next() (*AccountInfo, error) {
	if c.index >= len(c.accounts) {
		return nil, ErrNotEnoughAccounts
	}
	account := c.accounts[c.index]
	c.index++
	return account, nil
}

// NextSigner returns the next account, requiring it signed the transaction.
func (c *AccountContext) NextSigner() (*AccountInfo, error) {
	account, err := c.Next()
	if err != nil {
		return nil, err
	}
	if !account.IsSigner {
		return nil, ErrNotSigner
	}
	return account, nil
}

// NextWritable returns the next account, requiring it was declared writable.
func (c *AccountContext) NextWritable() (*AccountInfo, error) {
	account, err := c.Next()
	if err != nil {
		return nil, err
	}
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	return account, nil
}

// NextSignerWritable requires both flags.
func (c *AccountContext) NextSignerWritable() (*AccountInfo, error) {
	account, err := c.Next()
	if err != nil {
		return nil, err
	}
	if !account.IsSigner {
		return nil, ErrNotSigner
	}
	if !account.IsWritable {
		return nil, ErrNotWritable
	}
	return account, nil
}

// Remaining returns the accounts not yet consumed.
func (c *AccountContext) Remaining() []*AccountInfo {
	return c.accounts[c.index:]
}
