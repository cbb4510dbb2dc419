package main

import (
	"io"

	"github.com/danmuck/dapvar/internal/logging"
	"github.com/danmuck/dapvar/internal/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath   string
	printMetrics bool
	cfg          cliConfig
}

// run executes the command line in args. Metrics are written after the
// command returns, including when it fails.
func run(args []string, stdout, stderr io.Writer) error {
	opts := &rootOptions{cfg: defaultCLIConfig()}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if opts.printMetrics {
		if merr := writeMetrics(stderr); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "dapctl",
		Short:         "Inspect, validate and (de)serialize DAP2 structure datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.ConfigureRuntime()
			cfg, err := loadCLIConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.configPath != "" {
				zerolog.SetGlobalLevel(cfg.LogLevel)
			}
			observability.RegisterMetrics()
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to dapctl TOML config")
	root.PersistentFlags().BoolVar(&opts.printMetrics, "metrics", false, "print codec metrics to stderr on exit")

	root.AddCommand(
		newInitCmd(),
		newDeclCmd(),
		newCheckCmd(),
		newGetCmd(),
		newEncodeCmd(),
		newDecodeCmd(opts),
	)
	return root
}
