package cli

import (
	"github.com/spf13/cobra"

	"github.com/aogaki/NBox/config"
	"github.com/aogaki/NBox/geometry"
	"github.com/aogaki/NBox/material"
)

func validateCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "load and cross-validate the configuration, then build the geometry",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFiles(conf, true); err != nil {
				return err
			}
			store, err := loadStore(conf)
			if err != nil {
				return err
			}

			cache := material.NewCache()
			_, placed, err := geometry.Build(store, cache)
			if err != nil {
				return err
			}

			log.Infof("Configuration is valid: %d detector type(s), %d placement(s), %d fill material(s)",
				len(store.DetectorTypes()), len(placed), cache.Len())
			return nil
		},
	}
}
