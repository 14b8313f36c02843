package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/cli/tool"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the test suites of the project's program crates",
	Long: `Runs cargo test for every program crate in the project, in the
same crate discovery order as golt build.`,
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
			return errors.New("no program crates found, nothing to test")
		}

		runner := tool.NewRunner()
		log := logrus.StandardLogger()
		for _, crate := range crates {
			log.WithField("crate", crate).Info("testing program")
			if err := runner.Run(crate, "cargo", "test"); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
