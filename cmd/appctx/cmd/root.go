package cmd

import (
	"os"

	"github.com/Station-Manager/appctx"
	"github.com/Station-Manager/appctx/internal/config"
	"github.com/Station-Manager/appctx/internal/logging"
	"github.com/Station-Manager/appctx/internal/post"
	"github.com/Station-Manager/appctx/manifest"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootParams struct {
	ConfigFile string
	EnvFile    string
	Manifest   string
	Ordering   string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	params := &rootParams{}
	cmd := &cobra.Command{
		Use:           "appctx",
		Short:         "Build and inspect an application bean container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&params.ConfigFile, "config", "", "config file (default ./config.yml when present)")
	flags.StringVar(&params.EnvFile, "env-file", "", "env file (default ./.env when present)")
	flags.StringVarP(&params.Manifest, "manifest", "m", "", "bean manifest; the built-in post beans are used when empty")
	flags.StringVar(&params.Ordering, "ordering", "", "construction ordering: declaration or dependency")
	flags.StringVar(&params.LogLevel, "log-level", "", "log level override")

	cmd.AddCommand(
		newBeansCmd(params),
		newGetCmd(params),
		newCheckCmd(params),
		newKindsCmd(),
	)
	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func newCatalog() (*manifest.Catalog, error) {
	catalog := manifest.NewCatalog()
	if err := post.RegisterKinds(catalog); err != nil {
		return nil, errors.Wrap(err, "failed to register post kinds")
	}
	return catalog, nil
}

// buildContainer resolves configuration and initializes the container. Ordering
// precedence is flag, then manifest, then config file.
func buildContainer(cmd *cobra.Command, params *rootParams) (*appctx.Container, error) {
	cfg, err := config.Load(config.LoaderConfig{ConfigFile: params.ConfigFile, EnvFile: params.EnvFile})
	if err != nil {
		return nil, err
	}
	if params.LogLevel != "" {
		cfg.Log.Level = params.LogLevel
	}
	if params.Manifest != "" {
		cfg.Manifest = params.Manifest
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	ordering := cfg.Ordering
	descs := post.Descriptors()
	if cfg.Manifest != "" {
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		catalog, err := newCatalog()
		if err != nil {
			return nil, err
		}
		if descs, err = m.Descriptors(catalog); err != nil {
			return nil, err
		}
		if m.Ordering != "" {
			ordering = m.Ordering
		}
	}
	if params.Ordering != "" {
		ordering = params.Ordering
	}

	o, err := appctx.ParseOrdering(ordering)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Debug().Str("manifest", cfg.Manifest).Stringer("ordering", o).Msg("initializing container")
	return appctx.Initialize(descs, appctx.WithLogger(logger), appctx.WithOrdering(o))
}
