package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aogaki/NBox/config"
)

func sampleCmd(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "draw primary energies from the configured spectral source",
		Long: "draws primary energies, in MeV, from the configured spectral source, " +
			"falling back to the fixed energy and then to the thermal default",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(conf)
			if err != nil {
				return err
			}
			sampler := newSampler(conf, store)

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			for i := int64(0); i < conf.Events; i++ {
				fmt.Fprintf(out, "%g\n", sampler.Sample(nil))
			}
			return nil
		},
	}
	cmd.Flags().Int64VarP(&conf.Events, "count", "n", 10, "number of energies to draw")
	cmd.Flags().Float64Var(&conf.FixedEnergyMeV, "fixed-energy", 0,
		"mono-energetic fallback in MeV when no spectral source is given")
	return cmd
}
