// Package cli implements the musicctl command tree.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/cecil-the-coder/music-provider-kit/pkg/config"
	"github.com/cecil-the-coder/music-provider-kit/pkg/factory"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	verbose    bool
	lookupEnv  func(string) (string, bool)
}

// NewRootCmd creates the musicctl root command
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, os.LookupEnv)
}

func newRootCmd(version string, lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv}

	root := &cobra.Command{
		Use:   "musicctl",
		Short: "Get authorized music services from the service registry",
		Long: `musicctl builds music services (spotify, pandora, local) through the
service registry, authorizing them with the configured application
credentials, and probes their connectivity.`,
		Version: version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. unknown kinds, failed authorization)
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "musicctl version %s\n" .Version}}`)

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a YAML config file (defaults to the built-in reference config)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "prefix status lines with timestamps")

	root.AddCommand(newProbeCmd(opts))
	root.AddCommand(newListCmd(opts))

	return root
}

// loadConfig reads the config file if given, then applies environment overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configFile != "" {
		loaded, err := config.Load(o.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(o.lookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(out io.Writer) *log.Logger {
	flags := 0
	if o.verbose {
		flags = log.LstdFlags
	}
	return log.New(out, "", flags)
}

// newProvider creates the single provider used for the lifetime of a command
func (o *rootOptions) newProvider(cfg *config.Config, out io.Writer) *factory.Provider {
	return factory.NewDefaultProvider(cfg.ProviderOptions(o.newLogger(out)))
}
