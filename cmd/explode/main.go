package main

import (
	"fmt"
	"os"

	"explode/internal/config"
	"explode/internal/explode"
	"explode/internal/log"

	"github.com/spf13/cobra"
)

// Version information, set during build
var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
		dryRun  bool
		force   bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:     "explode SOURCE [DESTINATION]",
		Short:   "Move a directory's contents up into another directory",
		Long:    `Explode moves every entry of the source directory into the destination directory, then removes the emptied source directory.`,
		Version: version,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)

			cfg, err := loadConfig(cfgFile)
			if err != nil {
				log.Warn("could not load config: %v, using default settings", err)
				cfg = config.New()
			}

			cfg.Source = args[0]
			if len(args) > 1 {
				cfg.Destination = args[1]
			}

			// Flags always win over the defaults file
			if cmd.Flags().Changed("verbose") {
				cfg.Settings.Verbose = verbose
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.Settings.DryRun = dryRun
			}
			if cmd.Flags().Changed("force") {
				cfg.Settings.Force = force
			}

			engine := explode.NewWithConfig(cfg)
			engine.SetOutput(cmd.OutOrStdout())
			return engine.Explode()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print what is being done")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Don't do anything")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files in the destination")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/explode/config.yaml)")

	return cmd
}

func loadConfig(cfgFile string) (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigFile(cfgFile)
	}
	return config.LoadConfig()
}
