package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golt-ecs/golt/pkg/cli/config"
	"github.com/golt-ecs/golt/pkg/cli/tool"
)

// deployAttempts bounds retries of a flaky RPC endpoint during deploys.
const deployAttempts = 5

var deployCmd = &cobra.Command{
	Use:   "deploy [program...]",
	Short: "Deploy compiled programs to a cluster",
	Long: `Deploys compiled programs from target/deploy/ to the configured
cluster. Without arguments every declared system is deployed. Program
keypairs are created under the project's keypairs directory on first
deploy and reused afterwards, so a program keeps its address across
upgrades. Deploys are retried with backoff against transient RPC
failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := config.Find(".")
		if err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			for _, system := range cfg.Systems {
				names = append(names, system.Name)
			}
		}
		if len(names) == 0 {
			return errors.New("no systems declared, nothing to deploy")
		}

		cluster := viper.GetString("cluster")
		runner := tool.NewRunner()
		log := logrus.StandardLogger()

		for _, name := range names {
			binary := filepath.Join(root, "target", "deploy", name+".so")
			if _, err := os.Stat(binary); err != nil {
				return errors.Errorf("%s not found, run golt build first", binary)
			}

			programKeypair, err := ensureProgramKeypair(runner, cfg, root, name)
			if err != nil {
				return err
			}

			deployArgs := []string{
				"program", "deploy",
				"--url", cluster,
				"--program-id", programKeypair,
			}
			if payer := viper.GetString("keypair"); payer != "" {
				deployArgs = append(deployArgs, "--keypair", payer)
			}
			deployArgs = append(deployArgs, binary)

			log.WithFields(logrus.Fields{
				"program": name,
				"cluster": cluster,
			}).Info("deploying program")
			if err := tool.RunWithRetry(runner, deployAttempts, root, "solana", deployArgs...); err != nil {
				return errors.Wrapf(err, "failed to deploy %s", name)
			}
		}
		return nil
	},
}

// ensureProgramKeypair returns the program's keypair path, generating the
// keypair if this is the program's first deploy.
func ensureProgramKeypair(runner tool.Runner, cfg *config.Config, root, name string) (string, error) {
	dir := filepath.Join(root, cfg.Project.KeypairsDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".json")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	logrus.StandardLogger().WithField("program", name).Info("generating program keypair")
	err := runner.Run(root, "solana-keygen", "new", "--no-bip39-passphrase", "--silent", "-o", path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate keypair for %s", name)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(deployCmd)
}
