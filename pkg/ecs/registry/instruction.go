package registry

import (
	"github.com/golt-ecs/golt/pkg/ecs/instruction"
)

// Instruction tags.
const (
	TagCreateEntity      uint8 = 0
	TagTransferOwnership uint8 = 1
	TagDeactivateEntity  uint8 = 2
)

// CreateEntityInstructionArgs is the payload of a create instruction.
//
// Accounts:
//
//	0. [SIGNER, WRITE] Payer (becomes owner)
//	1. [WRITE]         Entity PDA
//	2. []              System program
type CreateEntityInstructionArgs struct {
	EntityId uint64
}

// MarshalCreateEntityInstruction packs a create instruction payload.
func MarshalCreateEntityInstruction(args *CreateEntityInstructionArgs) []byte {
	data := make([]byte, 9)
	offset := 0
	instruction.PutUint8(data, TagCreateEntity, &offset)
	instruction.PutUint64(data, args.EntityId, &offset)
	return data
}

// UnmarshalCreateEntityInstruction unpacks a create instruction payload.
func UnmarshalCreateEntityInstruction(data []byte) (*CreateEntityInstructionArgs, error) {
	var tag uint8
	offset := 0
	if err := instruction.ReadUint8(data, &tag, &offset); err != nil {
		return nil, err
	}
	if tag != TagCreateEntity {
		return nil, ErrInvalidInstruction
	}

	var args CreateEntityInstructionArgs
	if err := instruction.ReadUint64(data, &args.EntityId, &offset); err != nil {
		return nil, err
	}
	return &args, nil
}

// MarshalTransferOwnershipInstruction packs a transfer instruction, which
// is tag-only.
//
// Accounts:
//
//	0. [SIGNER] Current owner
//	1. [WRITE]  Entity PDA
//	2. []       New owner
func MarshalTransferOwnershipInstruction() []byte {
	return []byte{TagTransferOwnership}
}

// MarshalDeactivateEntityInstruction packs a deactivate instruction, which
// is tag-only.
//
// Accounts:
//
//	0. [SIGNER] Owner
//	1. [WRITE]  Entity PDA
func MarshalDeactivateEntityInstruction() []byte {
	return []byte{TagDeactivateEntity}
}
