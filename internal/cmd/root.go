package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mikopbx/modgen/internal/config"
	"github.com/mikopbx/modgen/internal/output"
)

// NewRootCmd creates the root command for modgen.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	g := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "modgen",
		Short: "MikoPBX module generator",
		Long: `modgen creates a new MikoPBX module from the official module template.

The template is cloned, stripped of its repository metadata and rebranded:
every placeholder in file contents and paths is replaced with names derived
from the module identifier.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, g, configFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: MODGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewNewCmd(g))
	rootCmd.AddCommand(NewNamesCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *config.GlobalConfig, configFlag string, verbose, timestamps bool) error {
	path := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})

	loader := config.NewLoader()
	cfg, loadErr := loader.Load(path.ConfigPath)
	if loadErr != nil {
		// Commands such as `config init --force` must still work.
		cfg = config.DefaultConfig()
	}

	g.Loader = loader
	g.Config = cfg
	g.ConfigPath = path.ConfigPath
	g.Verbose = verbose

	// Timestamps: flag (if explicitly set) > env/config > default.
	logCfg := output.LogConfig{
		Verbose:    verbose,
		Timestamps: cfg.Log.Timestamps,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestamps)
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "path", path.ConfigPath, "error", loadErr)
	}

	output.Debug("initializing CLI",
		"config", path.ConfigPath,
		"config_source", path.Source,
	)

	return nil
}
