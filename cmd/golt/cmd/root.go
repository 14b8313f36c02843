package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command when golt is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "golt",
	Short: "golt - entity component toolkit for Solana programs",
	Long: `golt manages ECS projects on Solana: component record layouts,
system scaffolds, generated bindings, builds and deploys.

Component records are discriminator-tagged fixed-offset byte buffers;
golt derives the layouts from golt.toml and keeps the generated Go and
TypeScript bindings in sync with it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.StandardLogger().WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("cluster", "https://api.devnet.solana.com", "RPC endpoint deploys target")
	rootCmd.PersistentFlags().String("keypair", "", "payer keypair for deploys (defaults to the solana CLI keypair)")

	viper.SetEnvPrefix("golt")
	viper.AutomaticEnv()
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("cluster", rootCmd.PersistentFlags().Lookup("cluster"))
	viper.BindPFlag("keypair", rootCmd.PersistentFlags().Lookup("keypair"))
}
