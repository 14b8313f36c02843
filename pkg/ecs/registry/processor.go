package registry

import (
	"bytes"

	"github.com/golt-ecs/golt/pkg/ecs/instruction"
	"github.com/golt-ecs/golt/pkg/ecs/pda"
	"github.com/golt-ecs/golt/pkg/ecs/runtime"
)

// ProcessInstruction dispatches one instruction against the registry. Any
// returned error rejects the enclosing transaction; storage is only mutated
// after every validation has passed, so a failure is never partially
// observable.
func ProcessInstruction(host runtime.SystemHost, accounts []*runtime.AccountInfo, data []byte) error {
	tag, err := instruction.Tag(data)
	if err != nil {
		return ErrInvalidInstruction
	}

	switch tag {
	case TagCreateEntity:
		return processCreateEntity(host, accounts, data)
	case TagTransferOwnership:
		return processTransferOwnership(accounts)
	case TagDeactivateEntity:
		return processDeactivateEntity(accounts)
	default:
		return ErrInvalidInstruction
	}
}

func processCreateEntity(host runtime.SystemHost, accounts []*runtime.AccountInfo, data []byte) error {
	args, err := UnmarshalCreateEntityInstruction(data)
	if err != nil {
		return err
	}

	ctx := runtime.NewAccountContext(accounts)
	payer, err := ctx.NextSignerWritable()
	if err != nil {
		return err
	}
	entityAccount, err := ctx.NextWritable()
	if err != nil {
		return err
	}
	if _, err := ctx.Next(); err != nil { // system program
		return err
	}

	bump, err := runtime.CreateRecord(
		host,
		payer,
		entityAccount,
		EntitySchema,
		PROGRAM_ID,
		EntitySeed,
		entityIdSeed(args.EntityId),
	)
	if err != nil {
		return err
	}

	entity := NewEntity(args.EntityId, payer.Key, bump)
	return entity.Marshal(entityAccount.Data)
}

func processTransferOwnership(accounts []*runtime.AccountInfo) error {
	ctx := runtime.NewAccountContext(accounts)
	owner, err := ctx.NextSigner()
	if err != nil {
		return err
	}
	entityAccount, err := ctx.NextWritable()
	if err != nil {
		return err
	}
	newOwner, err := ctx.Next()
	if err != nil {
		return err
	}

	entity, err := loadEntity(entityAccount)
	if err != nil {
		return err
	}
	if !bytes.Equal(entity.Owner, owner.Key) {
		return ErrUnauthorized
	}
	if !entity.Active {
		return ErrEntityNotActive
	}

	entity.Owner = newOwner.Key
	return entity.Marshal(entityAccount.Data)
}

func processDeactivateEntity(accounts []*runtime.AccountInfo) error {
	ctx := runtime.NewAccountContext(accounts)
	owner, err := ctx.NextSigner()
	if err != nil {
		return err
	}
	entityAccount, err := ctx.NextWritable()
	if err != nil {
		return err
	}

	entity, err := loadEntity(entityAccount)
	if err != nil {
		return err
	}
	if !bytes.Equal(entity.Owner, owner.Key) {
		return ErrUnauthorized
	}
	if !entity.Active {
		return ErrEntityNotActive
	}

	entity.Active = false
	return entity.Marshal(entityAccount.Data)
}

// loadEntity decodes the entity record and proves the account really is the
// canonical PDA for its id. The id comes from the record itself, so a forged
// account under a different address cannot pass.
func loadEntity(entityAccount *runtime.AccountInfo) (*Entity, error) {
	var entity Entity
	if err := entity.Unmarshal(entityAccount.Data); err != nil {
		return nil, err
	}

	if _, err := pda.Verify(entityAccount.Key, EntitySeed, entityIdSeed(entity.Id), PROGRAM_ID); err != nil {
		return nil, err
	}
	return &entity, nil
}
