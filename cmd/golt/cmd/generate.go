package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/gen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate component bindings",
	Long: `Regenerates Go and TypeScript bindings for every component in
golt.toml. Bindings land under bindings/go/<component>/ and
bindings/ts/. Generated files are overwritten; they carry a DO NOT EDIT
header for a reason.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := config.Find(".")
		if err != nil {
			return err
		}

		// Fail before writing anything if any two components collide on a
		// discriminator.
		if _, err := cfg.SchemaRegistry(); err != nil {
			return err
		}

		lang, _ := cmd.Flags().GetString("lang")
		for _, component := range cfg.Components {
			switch lang {
			case "go":
				err = writeGoBinding(root, component)
			case "ts":
				err = writeTsBinding(root, component)
			case "all":
				err = writeComponentBindings(root, component)
			default:
				err = errors.Errorf("unknown language %q, expected go, ts or all", lang)
			}
			if err != nil {
				return err
			}
		}

		logrus.StandardLogger().WithFields(logrus.Fields{
			"components": len(cfg.Components),
			"lang":       lang,
		}).Info("generated bindings")
		return nil
	},
}

func writeComponentBindings(root string, component config.Component) error {
	if err := writeGoBinding(root, component); err != nil {
		return err
	}
	return writeTsBinding(root, component)
}

func writeGoBinding(root string, component config.Component) error {
	code, err := gen.GoBinding(component)
	if err != nil {
		return err
	}

	pkg := gen.PackageName(component.Name)
	dir := filepath.Join(root, "bindings", "go", pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, pkg+".go")
	return errors.Wrapf(os.WriteFile(path, []byte(code), 0o644), "failed to write %s", path)
}

func writeTsBinding(root string, component config.Component) error {
	code, err := gen.TsBinding(component)
	if err != nil {
		return err
	}

	dir := filepath.Join(root, "bindings", "ts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, component.Name+".ts")
	return errors.Wrapf(os.WriteFile(path, []byte(code), 0o644), "failed to write %s", path)
}

func init() {
	generateCmd.Flags().String("lang", "all", "binding language to emit (go, ts or all)")
	rootCmd.AddCommand(generateCmd)
}
