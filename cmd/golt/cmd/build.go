package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/cli/tool"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the project's on-chain programs",
	Long: `Runs cargo build-sbf for every program crate in the project.
A crate is any directory under the systems or components directory that
carries a Cargo.toml. Compiled programs land in target/deploy/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := config.Find(".")
		if err != nil {
			return err
		}

		crates, err := programCrates(cfg, root)
		if err != nil {
			return err
		}
		if len(crates) == 0 {
			return errors.New("no program crates found, nothing to build")
		}

		runner := tool.NewRunner()
		log := logrus.StandardLogger()
		for _, crate := range crates {
			log.WithField("crate", crate).Info("building program")
			if err := runner.Run(crate, "cargo", "build-sbf"); err != nil {
				return err
			}
		}
		return nil
	},
}

// programCrates finds every Cargo.toml-bearing directory under the
// project's program directories.
func programCrates(cfg *config.Config, root string) ([]string, error) {
	var crates []string
	for _, dir := range []string{cfg.Project.ComponentsDir, cfg.Project.SystemsDir} {
		entries, err := os.ReadDir(filepath.Join(root, dir))
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			crate := filepath.Join(root, dir, entry.Name())
			if _, err := os.Stat(filepath.Join(crate, "Cargo.toml")); err == nil {
				crates = append(crates, crate)
			}
		}
	}
	return crates, nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
