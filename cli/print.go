package cli

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/aogaki/NBox/config"
)

func printCmd(conf *config.Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "print the loaded configuration",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(conf)
			if err != nil {
				return err
			}
			store.PrintConfiguration(os.Stdout)
			if verbose {
				spew.Fdump(os.Stdout, store)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the full store structure")
	return cmd
}
