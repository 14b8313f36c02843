package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/gen"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Add a component or system to the project",
}

var newComponentCmd = &cobra.Command{
	Use:   "component <name>",
	Short: "Declare a component record layout",
	Long: `Declares a component in golt.toml and regenerates its bindings.

Fields are given as name:type pairs, for example:

  golt new component health --field entity:pubkey --field current:u32 --field max:u32 --field bump:bump

Types: u8 i8 bool u16 i16 u32 i32 u64 i64 u128 i128 pubkey, plus bump for
the canonical bump byte. Field order fixes the record's byte offsets, so
reordering fields after records exist on chain is a breaking change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := config.Find(".")
		if err != nil {
			return err
		}

		name := args[0]
		seed, _ := cmd.Flags().GetString("seed")
		if seed == "" {
			seed = name
		}

		rawFields, _ := cmd.Flags().GetStringArray("field")
		fields, err := parseFields(rawFields)
		if err != nil {
			return err
		}

		component := config.Component{
			Name:   name,
			Seed:   seed,
			Fields: fields,
		}

		// Materializing the schema validates field types and record size
		// before the manifest is touched.
		s, err := component.Schema()
		if err != nil {
			return err
		}
		if err := cfg.AddComponent(component); err != nil {
			return err
		}

		// A new component must not collide with an existing one's
		// discriminator.
		if _, err := cfg.SchemaRegistry(); err != nil {
			return err
		}

		if err := cfg.Save(filepath.Join(root, config.FileName)); err != nil {
			return err
		}
		if err := writeComponentBindings(root, component); err != nil {
			return err
		}

		logrus.StandardLogger().WithFields(logrus.Fields{
			"component": name,
			"size":      s.TotalSize(),
		}).Info("declared component")
		return nil
	},
}

var newSystemCmd = &cobra.Command{
	Use:   "system <name>",
	Short: "Scaffold a system program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := config.Find(".")
		if err != nil {
			return err
		}

		name := args[0]
		if err := cfg.AddSystem(config.System{Name: name}); err != nil {
			return err
		}

		scaffold, err := gen.SystemScaffold(name)
		if err != nil {
			return err
		}

		dir := filepath.Join(root, cfg.Project.SystemsDir, gen.PackageName(name))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(dir, "processor.go")
		if err := os.WriteFile(path, []byte(scaffold), 0o644); err != nil {
			return errors.Wrap(err, "failed to write system scaffold")
		}

		if err := cfg.Save(filepath.Join(root, config.FileName)); err != nil {
			return err
		}

		logrus.StandardLogger().WithFields(logrus.Fields{
			"system": name,
			"path":   path,
		}).Info("scaffolded system")
		return nil
	},
}

// parseFields turns name:type flag values into manifest field declarations.
// The pseudo-type bump declares the record's canonical bump byte.
func parseFields(raw []string) ([]config.Field, error) {
	fields := make([]config.Field, 0, len(raw))
	for _, spec := range raw {
		name, typ, ok := strings.Cut(spec, ":")
		if !ok || name == "" || typ == "" {
			return nil, errors.Errorf("invalid field %q, expected name:type", spec)
		}
		field := config.Field{Name: name, Type: typ}
		if typ == "bump" {
			field.Type = "u8"
			field.Bump = true
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func init() {
	newComponentCmd.Flags().String("seed", "", "PDA seed (defaults to the component name)")
	newComponentCmd.Flags().StringArray("field", nil, "field declaration as name:type, repeatable")

	newCmd.AddCommand(newComponentCmd)
	newCmd.AddCommand(newSystemCmd)
	rootCmd.AddCommand(newCmd)
}
