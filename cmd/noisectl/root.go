package main

import (
	"fmt"

	"github.com/amaumene/syscallnoise/internal/config"
	"github.com/amaumene/syscallnoise/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

type rootOptions struct {
	logLevel string
	envFile  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "noisectl",
		Short:         "Run and measure syscall noise",
		Long:          "noisectl drives the same getpid/nanosleep emitter as the preload library, in the foreground.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "File of NOISE_* variables to load")

	cmd.AddCommand(
		newRunCmd(),
		newSampleCmd(),
		newRunsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if cmd.Flags().Changed("env-file") {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	} else {
		// a missing default .env is fine
		_ = godotenv.Load(defaultEnvFile)
	}

	settings := config.LoadLogSettings()
	if settings.Discards() {
		settings.File = config.LogFileStderr
	}
	if cmd.Flags().Changed("log-level") {
		settings.Level = o.logLevel
	}
	if err := logging.Setup(settings); err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the noisectl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "noisectl", version)
		},
	}
}
