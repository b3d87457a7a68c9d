package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mediad/internal/app"
)

type depsOptions struct {
	PackagesDir string
	GstInspect  string
	DpkgStatus  string
}

func newDepsCommand(cfg *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Print a report of runtime and library dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd, cfg.depsOptions())
		},
	}
}

func runDeps(cmd *cobra.Command, opts depsOptions) error {
	ctx := log.Logger.WithContext(cmd.Context())
	service := app.NewService(app.ServiceConfig{
		PackagesDir: resolveString(cmd, opts.PackagesDir, "packages_dir", "packages-dir"),
		GstInspect:  resolveString(cmd, opts.GstInspect, "gst_inspect", "gst-inspect"),
		DpkgStatus:  resolveString(cmd, opts.DpkgStatus, "dpkg_status", "dpkg-status"),
	})
	result, err := service.ListDeps(ctx, app.ListDepsRequest{})
	if err != nil {
		log.Ctx(ctx).Error().Msg(errorMessage(err))
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Report)
	return err
}
