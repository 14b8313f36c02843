package registry

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/golt-ecs/golt/pkg/ecs/codec"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

// EntitySeed keys entity PDAs and derives the entity discriminator.
var EntitySeed = []byte("entity")

// EntitySchema lays out an entity record:
//
//	8  discriminator ("entity\0\0")
//	8  id
//	32 owner
//	1  active
//	1  bump
//	6  reserved
var EntitySchema = schema.MustNew("Entity", EntitySeed,
	schema.NewField("id", schema.KindU64),
	schema.NewField("owner", schema.KindKey),
	schema.NewField("active", schema.KindBool),
	schema.Bump("bump"),
	schema.Bytes("reserved", 6),
)

// EntitySize is the full entity account footprint.
var EntitySize = EntitySchema.TotalSize()

// Entity is a registered domain object. Components attach to it by deriving
// their PDAs from its account address. Deactivation is a soft delete; entity
// accounts are never closed.
type Entity struct {
	Id     uint64
	Owner  ed25519.PublicKey
	Active bool
	Bump   uint8
}

// NewEntity returns an active entity owned by its creator.
func NewEntity(id uint64, owner ed25519.PublicKey, bump uint8) *Entity {
	return &Entity{
		Id:     id,
		Owner:  owner,
		Active: true,
		Bump:   bump,
	}
}

// Unmarshal decodes an entity from raw account data via the record codec.
func (obj *Entity) Unmarshal(data []byte) error {
	record, err := codec.Unpack(EntitySchema, data)
	if err != nil {
		return err
	}

	obj.Id = record.GetUint64("id")
	obj.Owner = record.GetKey("owner")
	obj.Active = record.GetBool("active")
	obj.Bump = record.GetUint8("bump")
	return nil
}

// Marshal encodes the entity into raw account data via the record codec.
func (obj *Entity) Marshal(data []byte) error {
	record := codec.NewRecord(EntitySchema)
	if err := record.Set("id", obj.Id); err != nil {
		return err
	}
	if err := record.Set("owner", obj.Owner); err != nil {
		return err
	}
	if err := record.Set("active", obj.Active); err != nil {
		return err
	}
	if err := record.Set("bump", obj.Bump); err != nil {
		return err
	}
	return codec.Pack(record, data)
}

func (obj *Entity) String() string {
	return fmt.Sprintf(
		"Entity{id=%d,owner=%s,active=%v,bump=%d}",
		obj.Id,
		base58.Encode(obj.Owner),
		obj.Active,
		obj.Bump,
	)
}
