package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golt-ecs/golt/pkg/cli/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the project's components and systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.Find(".")
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPONENT\tSEED\tSIZE\tDISCRIMINATOR")
		for _, component := range cfg.Components {
			s, err := component.Schema()
			if err != nil {
				return err
			}
			d := s.Discriminator()
			fmt.Fprintf(w, "%s\t%s\t%d\t%x\n", component.Name, component.Seed, s.TotalSize(), d[:])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(cfg.Systems) > 0 {
			fmt.Println()
			fmt.Println("SYSTEMS")
			for _, system := range cfg.Systems {
				fmt.Printf("  %s\n", system.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
