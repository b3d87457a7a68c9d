package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mediad/internal/adapters"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "MEDIAD"

type RootConfig struct {
	ConfigFile  string
	LogLevel    string
	ListDeps    bool
	PackagesDir string
	GstInspect  string
	DpkgStatus  string
}

func (c *RootConfig) depsOptions() depsOptions {
	return depsOptions{
		PackagesDir: c.PackagesDir,
		GstInspect:  c.GstInspect,
		DpkgStatus:  c.DpkgStatus,
	}
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "mediad",
		Short:   "Media server daemon",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.ListDeps {
				return runDeps(cmd, cfg.depsOptions())
			}
			return cmd.Help()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.PackagesDir, "packages-dir", adapters.DefaultPackagesDir, "Directory of installed package manifests")
	flags.StringVar(&cfg.GstInspect, "gst-inspect", adapters.DefaultGstInspect, "GStreamer inspector binary")
	flags.StringVar(&cfg.DpkgStatus, "dpkg-status", adapters.DefaultDpkgStatus, "dpkg status database")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("packages_dir", flags.Lookup("packages-dir"))
	_ = viper.BindPFlag("gst_inspect", flags.Lookup("gst-inspect"))
	_ = viper.BindPFlag("dpkg_status", flags.Lookup("dpkg-status"))
	cmd.Flags().BoolVar(&cfg.ListDeps, "list-deps", false, "List dependencies and their versions")

	cmd.AddCommand(newDepsCommand(&cfg))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("mediad")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/mediad")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes logs to stderr; stdout carries command output.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
