package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"housepriced/internal/config"
)

func buildRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "housepriced",
		Short:         "House price prediction API",
		Long:          "Serves house price predictions from a pre-trained regression model.\nRuns the HTTP server when no subcommand is given.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .json or .toml)")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Dotenv file loaded before reading the environment (missing is fine)")
	pf.StringVar(&opts.host, "host", config.DefaultHost, "Listen host")
	pf.IntVar(&opts.port, "port", config.DefaultPort, "Listen port (defaults PORT or 5000)")
	pf.StringVar(&opts.modelPath, "model", config.DefaultModelPath, "Model artifact path (.json, .yaml or .toml)")
	pf.BoolVar(&opts.strict, "strict", false, "Exit if the model cannot be loaded instead of serving without it")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error|off")
	pf.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "Log format: console|json")
	pf.StringVar(&opts.logFile, "log-file", "", "Also write JSON logs to this rotated file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	predictCmd := &cobra.Command{
		Use:     "predict",
		Short:   "Predict one JSON feature object from a file or stdin",
		Example: "  echo '{\"MedInc\":8.3,\"HouseAge\":41,\"AveRooms\":6.98,\"AveBedrms\":1.02,\"Population\":322,\"AveOccup\":2.56}' | housepriced predict",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, opts)
		},
	}
	predictCmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input file, - for stdin")

	checkCmd := &cobra.Command{
		Use:   "check-model [path]",
		Short: "Load and validate a model artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckModel(cmd, opts, args)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(opts.stdout, Version)
			return err
		},
	}

	root.AddCommand(serveCmd, predictCmd, checkCmd, versionCmd)
	return root
}

// resolveConfig merges defaults, the config file, the environment and the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	var cfg config.Config
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return cfg, err
	}
	if opts.configPath != "" {
		c, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = c
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("host") {
		cfg.Host = opts.host
	}
	if fs.Changed("port") {
		cfg.Port = opts.port
	}
	if fs.Changed("model") {
		cfg.ModelPath = opts.modelPath
	}
	if fs.Changed("strict") {
		cfg.StrictStartup = opts.strict
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if fs.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
