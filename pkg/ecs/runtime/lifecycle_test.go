package runtime

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golt-ecs/golt/pkg/ecs/pda"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

var healthSchema = schema.MustNew("Health", []byte("health"),
	schema.NewField("entity", schema.KindKey),
	schema.NewField("current", schema.KindU32),
	schema.NewField("max", schema.KindU32),
	schema.Bump("bump"),
)

func generateKey(t *testing.T) ed25519.PublicKey {
	pub, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return pub
}

func newSignerAccount(key ed25519.PublicKey, lamports uint64) *AccountInfo {
	return &AccountInfo{
		Key:        key,
		Lamports:   lamports,
		IsSigner:   true,
		IsWritable: true,
	}
}

func TestCreateRecord(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)
	entity := generateKey(t)

	addr, expectedBump, err := pda.Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	payer := newSignerAccount(generateKey(t), 10_000_000)
	target := &AccountInfo{Key: addr, IsWritable: true}

	bump, err := CreateRecord(host, payer, target, healthSchema, programID, []byte("health"), entity)
	require.NoError(t, err)
	assert.Equal(t, expectedBump, bump)

	require.Len(t, target.Data, healthSchema.TotalSize())
	assert.Equal(t, []byte("health\x00\x00"), target.Data[:8])
	assert.Equal(t, programID, target.Owner)

	// Rent moved from payer to the new account.
	rent := host.Rent().MinimumBalance(uint64(healthSchema.TotalSize()))
	assert.Equal(t, 10_000_000-rent, payer.Lamports)
	assert.Equal(t, rent, target.Lamports)
}

func TestCreateRecordAlreadyInitialized(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)
	entity := generateKey(t)

	addr, _, err := pda.Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	payer := newSignerAccount(generateKey(t), 10_000_000)

	// Target already holds a full record starting with its discriminator.
	existing := make([]byte, healthSchema.TotalSize())
	copy(existing, "health\x00\x00")
	snapshot := append([]byte(nil), existing...)

	target := &AccountInfo{Key: addr, IsWritable: true, Data: existing}

	_, err = CreateRecord(host, payer, target, healthSchema, programID, []byte("health"), entity)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// The account was not touched and the payer kept their funds.
	assert.Equal(t, snapshot, target.Data)
	assert.EqualValues(t, 10_000_000, payer.Lamports)
}

func TestCreateRecordWrongAddress(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)
	entity := generateKey(t)

	payer := newSignerAccount(generateKey(t), 10_000_000)
	target := &AccountInfo{Key: generateKey(t), IsWritable: true}

	_, err := CreateRecord(host, payer, target, healthSchema, programID, []byte("health"), entity)
	assert.ErrorIs(t, err, pda.ErrInvalidPda)
	assert.Empty(t, target.Data)
}

func TestCreateRecordInsufficientFunds(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)
	entity := generateKey(t)

	addr, _, err := pda.Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	payer := newSignerAccount(generateKey(t), 1)
	target := &AccountInfo{Key: addr, IsWritable: true}

	_, err = CreateRecord(host, payer, target, healthSchema, programID, []byte("health"), entity)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.Empty(t, target.Data)
	assert.EqualValues(t, 1, payer.Lamports)
}

func TestCreateRecordPayerMustSign(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)
	entity := generateKey(t)

	addr, _, err := pda.Derive([]byte("health"), entity, programID)
	require.NoError(t, err)

	payer := newSignerAccount(generateKey(t), 10_000_000)
	payer.IsSigner = false
	target := &AccountInfo{Key: addr, IsWritable: true}

	_, err = CreateRecord(host, payer, target, healthSchema, programID, []byte("health"), entity)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestLedgerRejectsBadSignerSeeds(t *testing.T) {
	host := NewLedger()
	programID := generateKey(t)

	payer := newSignerAccount(generateKey(t), 10_000_000)
	target := &AccountInfo{Key: generateKey(t)}

	err := host.CreateAccount(payer, target, 100, 49, programID, [][]byte{[]byte("health"), {255}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientFunds)
	assert.Empty(t, target.Data)
}

func TestAccountContext(t *testing.T) {
	signer := &AccountInfo{Key: generateKey(t), IsSigner: true}
	writable := &AccountInfo{Key: generateKey(t), IsWritable: true}
	readonly := &AccountInfo{Key: generateKey(t)}

	ctx := NewAccountContext([]*AccountInfo{signer, writable, readonly})

	got, err := ctx.NextSigner()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(got.Key, signer.Key))

	got, err = ctx.NextWritable()
	require.NoError(t, err)
	assert.True(t, bytes.Equal(got.Key, writable.Key))

	require.Len(t, ctx.Remaining(), 1)

	_, err = ctx.NextSigner()
	assert.ErrorIs(t, err, ErrNotSigner)

	_, err = ctx.Next()
	assert.ErrorIs(t, err, ErrNotEnoughAccounts)

	ctx = NewAccountContext([]*AccountInfo{readonly})
	_, err = ctx.NextWritable()
	assert.ErrorIs(t, err, ErrNotWritable)

	ctx = NewAccountContext([]*AccountInfo{signer})
	_, err = ctx.NextSignerWritable()
	assert.ErrorIs(t, err, ErrNotWritable)
}
