// Package gen emits component bindings from a manifest declaration. The
// emitters are thin: generated code instantiates the component's schema and
// delegates all packing to the record codec, so the byte layout lives in
// exactly one place.
package gen

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

var ErrUnsupportedKind = errors.New("unsupported field kind")

// kindInfo maps a schema kind onto the shapes the emitters need.
type kindInfo struct {
	goType     string
	goGetter   string
	schemaCtor string
	tsType     string
	tsGetter   string
	tsSetter   string
}

var kinds = map[schema.Kind]kindInfo{
	schema.KindU8:   {"uint8", "GetUint8", "schema.KindU8", "number", "getUint8", "setUint8"},
	schema.KindI8:   {"int8", "GetInt8", "schema.KindI8", "number", "getInt8", "setInt8"},
	schema.KindBool: {"bool", "GetBool", "schema.KindBool", "boolean", "", ""},
	schema.KindU16:  {"uint16", "GetUint16", "schema.KindU16", "number", "getUint16", "setUint16"},
	schema.KindI16:  {"int16", "GetInt16", "schema.KindI16", "number", "getInt16", "setInt16"},
	schema.KindU32:  {"uint32", "GetUint32", "schema.KindU32", "number", "getUint32", "setUint32"},
	schema.KindI32:  {"int32", "GetInt32", "schema.KindI32", "number", "getInt32", "setInt32"},
	schema.KindU64:  {"uint64", "GetUint64", "schema.KindU64", "bigint", "getBigUint64", "setBigUint64"},
	schema.KindI64:  {"int64", "GetInt64", "schema.KindI64", "bigint", "getBigInt64", "setBigInt64"},
	schema.KindU128: {"[16]byte", "GetRaw128", "schema.KindU128", "Uint8Array", "", ""},
	schema.KindI128: {"[16]byte", "GetRaw128", "schema.KindI128", "Uint8Array", "", ""},
	schema.KindKey:  {"ed25519.PublicKey", "GetKey", "schema.KindKey", "Uint8Array", "", ""},
}

// CamelCase converts a snake_case manifest name to an exported Go name.
func CamelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// PackageName derives a Go package name from a component name.
func PackageName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func componentSchema(component config.Component) (*schema.Schema, error) {
	s, err := component.Schema()
	if err != nil {
		return nil, err
	}
	for _, f := range s.Fields() {
		if _, ok := kinds[f.Kind]; !ok {
			return nil, errors.Wrapf(ErrUnsupportedKind, "%s: %s", f.Name, f.Kind)
		}
	}
	return s, nil
}
