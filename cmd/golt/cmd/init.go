package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Create a new golt project",
	Long: `Creates a golt.toml manifest and the project directory layout.
With a name argument the project is created in a new directory of that
name; without one the current directory is initialized.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return err
		}

		name := filepath.Base(root)
		if len(args) == 1 {
			name = args[0]
			root = filepath.Join(root, name)
		}

		manifestPath := filepath.Join(root, config.FileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return errors.Errorf("%s already exists", manifestPath)
		}

		cfg := config.Default(name)
		for _, dir := range []string{
			cfg.Project.ComponentsDir,
			cfg.Project.SystemsDir,
			cfg.Project.KeypairsDir,
			filepath.Join("bindings", "go"),
			filepath.Join("bindings", "ts"),
		} {
			if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
				return errors.Wrap(err, "failed to create project directory")
			}
		}

		if err := cfg.Save(manifestPath); err != nil {
			return err
		}

		logrus.StandardLogger().WithFields(logrus.Fields{
			"project": name,
			"path":    root,
		}).Info("initialized project")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
