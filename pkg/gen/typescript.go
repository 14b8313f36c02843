package gen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

type tsField struct {
	Name   string
	TsType string
	Decode string
	Encode string
}

type tsComponent struct {
	TypeName      string
	ConstName     string
	Seed          string
	Size          int
	Discriminator string
	Fields        []tsField
}

// TsBinding emits the TypeScript client binding for a component: an
// interface plus decode/encode over a DataView, little-endian, matching the
// account byte layout exactly.
func TsBinding(component config.Component) (string, error) {
	s, err := componentSchema(component)
	if err != nil {
		return "", err
	}

	discriminator := s.Discriminator()
	parts := make([]string, len(discriminator))
	for i, b := range discriminator {
		parts[i] = fmt.Sprintf("%d", b)
	}

	data := tsComponent{
		TypeName:      CamelCase(component.Name),
		ConstName:     strings.ToUpper(component.Name),
		Seed:          component.Seed,
		Size:          s.TotalSize(),
		Discriminator: strings.Join(parts, ", "),
	}

	for _, f := range s.Fields() {
		info := kinds[f.Kind]
		field := tsField{
			Name:   f.Name,
			TsType: info.tsType,
		}

		end := f.Offset() + f.Size()
		switch {
		case f.Kind == schema.KindBool:
			field.Decode = fmt.Sprintf("data[%d] !== 0", f.Offset())
			field.Encode = fmt.Sprintf("data[%d] = value.%s ? 1 : 0;", f.Offset(), f.Name)
		case f.Kind == schema.KindU8 || f.Kind == schema.KindI8:
			field.Decode = fmt.Sprintf("view.%s(%d)", info.tsGetter, f.Offset())
			field.Encode = fmt.Sprintf("view.%s(%d, value.%s);", info.tsSetter, f.Offset(), f.Name)
		case info.tsGetter == "": // raw byte range: keys, fixed arrays, 128 bit ints
			field.TsType = "Uint8Array"
			field.Decode = fmt.Sprintf("data.slice(%d, %d)", f.Offset(), end)
			field.Encode = fmt.Sprintf("data.set(value.%s, %d);", f.Name, f.Offset())
		default:
			field.Decode = fmt.Sprintf("view.%s(%d, true)", info.tsGetter, f.Offset())
			field.Encode = fmt.Sprintf("view.%s(%d, value.%s, true);", info.tsSetter, f.Offset(), f.Name)
		}

		data.Fields = append(data.Fields, field)
	}

	var b strings.Builder
	if err := tsBindingTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var tsBindingTemplate = template.Must(template.New("ts-binding").Parse(`// Code generated by golt. DO NOT EDIT.

export const {{.ConstName}}_SEED = {{printf "%q" .Seed}};
export const {{.ConstName}}_SIZE = {{.Size}};
export const {{.ConstName}}_DISCRIMINATOR = new Uint8Array([{{.Discriminator}}]);

export interface {{.TypeName}} {
{{- range .Fields}}
  {{.Name}}: {{.TsType}};
{{- end}}
}

export function decode{{.TypeName}}(data: Uint8Array): {{.TypeName}} {
  if (data.length < {{.ConstName}}_SIZE) {
    throw new Error("buffer too short");
  }
  for (let i = 0; i < 8; i++) {
    if (data[i] !== {{.ConstName}}_DISCRIMINATOR[i]) {
      throw new Error("wrong discriminator");
    }
  }
  const view = new DataView(data.buffer, data.byteOffset, data.byteLength);
  return {
{{- range .Fields}}
    {{.Name}}: {{.Decode}},
{{- end}}
  };
}

export function encode{{.TypeName}}(value: {{.TypeName}}, data: Uint8Array): void {
  if (data.length < {{.ConstName}}_SIZE) {
    throw new Error("buffer too short");
  }
  const view = new DataView(data.buffer, data.byteOffset, data.byteLength);
  data.set({{.ConstName}}_DISCRIMINATOR, 0);
{{- range .Fields}}
  {{.Encode}}
{{- end}}
}
`))
