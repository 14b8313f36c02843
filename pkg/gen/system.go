package gen

import (
	"strings"
	"text/template"
)

// SystemScaffold emits the starting point for a new system program. Systems
// hold the game logic, so the scaffold only wires dispatch and leaves the
// processor body to the author.
func SystemScaffold(name string) (string, error) {
	data := struct {
		Package  string
		TypeName string
	}{
		Package:  PackageName(name),
		TypeName: CamelCase(name),
	}

	var b strings.Builder
	if err := systemTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var systemTemplate = template.Must(template.New("system").Parse(`package {{.Package}}

import (
	"github.com/pkg/errors"

	"github.com/golt-ecs/golt/pkg/ecs/instruction"
	"github.com/golt-ecs/golt/pkg/ecs/runtime"
)

var ErrInvalidInstruction = errors.New("unexpected instruction data")

const (
	TagExecute uint8 = 0
)

// ProcessInstruction dispatches one {{.TypeName}} instruction.
func ProcessInstruction(host runtime.SystemHost, accounts []*runtime.AccountInfo, data []byte) error {
	tag, err := instruction.Tag(data)
	if err != nil {
		return ErrInvalidInstruction
	}
	if instruction.IsReservedTag(tag) {
		return ErrInvalidInstruction
	}

	switch tag {
	case TagExecute:
		return processExecute(host, accounts)
	default:
		return ErrInvalidInstruction
	}
}

func processExecute(host runtime.SystemHost, accounts []*runtime.AccountInfo) error {
	ctx := runtime.NewAccountContext(accounts)
	_ = ctx

	// TODO: implement {{.TypeName}} logic.
	return nil
}
`))
