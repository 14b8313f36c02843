package gen

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/golt-ecs/golt/pkg/cli/config"
)

type goField struct {
	GoName     string
	Name       string
	GoType     string
	Getter     string
	SchemaCtor string
}

type goComponent struct {
	Name     string
	Package  string
	TypeName string
	Seed     string
	Fields   []goField
}

// GoBinding emits the Go source for a component: a typed struct whose
// Marshal/Unmarshal delegate to the record codec through the component's
// schema, plus the PDA address helper.
func GoBinding(component config.Component) (string, error) {
	s, err := componentSchema(component)
	if err != nil {
		return "", err
	}

	data := goComponent{
		Name:     component.Name,
		Package:  PackageName(component.Name),
		TypeName: CamelCase(component.Name),
		Seed:     component.Seed,
	}

	for _, f := range s.Fields() {
		info := kinds[f.Kind]

		ctor := fmt.Sprintf("schema.NewField(%q, %s)", f.Name, info.schemaCtor)
		if f.IsBump {
			ctor = fmt.Sprintf("schema.Bump(%q)", f.Name)
		}

		data.Fields = append(data.Fields, goField{
			GoName:     CamelCase(f.Name),
			Name:       f.Name,
			GoType:     info.goType,
			Getter:     info.goGetter,
			SchemaCtor: ctor,
		})
	}

	var b strings.Builder
	if err := goBindingTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var goBindingTemplate = template.Must(template.New("go-binding").Parse(`// Code generated by golt. DO NOT EDIT.

package {{.Package}}

import (
	"crypto/ed25519"

	"github.com/golt-ecs/golt/pkg/ecs/codec"
	"github.com/golt-ecs/golt/pkg/ecs/pda"
	"github.com/golt-ecs/golt/pkg/ecs/schema"
)

// {{.TypeName}}Seed keys {{.TypeName}} PDAs and derives the account discriminator.
var {{.TypeName}}Seed = []byte({{printf "%q" .Seed}})

var {{.TypeName}}Schema = schema.MustNew({{printf "%q" .Name}}, {{.TypeName}}Seed,
{{- range .Fields}}
	{{.SchemaCtor}},
{{- end}}
)

var {{.TypeName}}Size = {{.TypeName}}Schema.TotalSize()

type {{.TypeName}} struct {
{{- range .Fields}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

func (obj *{{.TypeName}}) Unmarshal(data []byte) error {
	record, err := codec.Unpack({{.TypeName}}Schema, data)
	if err != nil {
		return err
	}

{{- range .Fields}}
	obj.{{.GoName}} = record.{{.Getter}}({{printf "%q" .Name}})
{{- end}}
	return nil
}

func (obj *{{.TypeName}}) Marshal(data []byte) error {
	record := codec.NewRecord({{.TypeName}}Schema)
{{- range .Fields}}
	if err := record.Set({{printf "%q" .Name}}, obj.{{.GoName}}); err != nil {
		return err
	}
{{- end}}
	return codec.Pack(record, data)
}

type Get{{.TypeName}}AddressArgs struct {
	Entity ed25519.PublicKey
}

// Get{{.TypeName}}Address derives the canonical PDA for an entity's {{.TypeName}} record.
func Get{{.TypeName}}Address(args *Get{{.TypeName}}AddressArgs, programID ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return pda.Derive({{.TypeName}}Seed, args.Entity, programID)
}
`))
