// Package cli implement the nbox command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aogaki/NBox/config"
	"github.com/aogaki/NBox/setup"
	"github.com/aogaki/NBox/spectrum"
)

var log = config.NamedLogger("cli")

// Launch runs the nbox command tree.
func Launch() {
	conf := config.Default()

	rootCmd := &cobra.Command{
		Use:   "nbox",
		Short: "neutron detector-tube layout simulation tools",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := conf.Check(); err != nil {
				return err
			}
			return config.SetLoggingLevel(conf.LoggingLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(
		&conf.DetectorFile, "detectors", "d", "", "detector catalog file (JSON)")
	rootCmd.PersistentFlags().StringVarP(
		&conf.GeometryFile, "geometry", "g", "", "geometry file (JSON)")
	rootCmd.PersistentFlags().StringVarP(
		&conf.SourceFile, "source", "s", "", "spectral source file (BSON container)")
	rootCmd.PersistentFlags().StringVar(
		&conf.LoggingLevel, "logging-level", conf.LoggingLevel,
		"logging level, one of: panic, fatal, error, warn, info, debug")

	rootCmd.AddCommand(validateCmd(&conf), printCmd(&conf), sampleCmd(&conf))

	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// loadStore loads every configured document into a fresh store and
// cross-validates it. Transport must not start when any load or validate
// step fails, so the first error aborts.
func loadStore(conf *config.Config) (*setup.Store, error) {
	store := setup.NewStore()
	if conf.DetectorFile != "" {
		if err := store.LoadDetectorCatalog(conf.DetectorFile); err != nil {
			return nil, err
		}
	}
	if conf.GeometryFile != "" {
		if err := store.LoadGeometry(conf.GeometryFile); err != nil {
			return nil, err
		}
	}
	if conf.SourceFile != "" {
		if err := store.LoadSpectralSource(conf.SourceFile); err != nil {
			return nil, err
		}
	}
	if err := store.Validate(); err != nil {
		return nil, err
	}
	return store, nil
}

func newSampler(conf *config.Config, store *setup.Store) *spectrum.Sampler {
	return spectrum.NewSampler(store.Source(), conf.FixedEnergyMeV)
}

func requireFiles(conf *config.Config, needGeometry bool) error {
	if conf.DetectorFile == "" {
		return fmt.Errorf("no detector catalog file given, use -d")
	}
	if needGeometry && conf.GeometryFile == "" {
		return fmt.Errorf("no geometry file given, use -g")
	}
	return nil
}
