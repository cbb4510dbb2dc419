package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/danmuck/dapvar/internal/config"
	"github.com/danmuck/dapvar/internal/dap"
	"github.com/danmuck/dapvar/internal/observability"
	"github.com/danmuck/dapvar/internal/protocol"
	"github.com/danmuck/dapvar/internal/protocol/frame"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func loadTree(path string) (*dap.Structure, error) {
	cfg, err := config.LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return config.Build(cfg)
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dataset.toml]",
		Short: "Write an example dataset definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newDeclCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decl [dataset.toml]",
		Short: "Print the dataset declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(args[0])
			if err != nil {
				return err
			}
			return root.PrintDecl(cmd.OutOrStdout(), "", true, false)
		},
	}
}

func newCheckCmd() *cobra.Command {
	var shallow bool
	cmd := &cobra.Command{
		Use:   "check [dataset.toml]",
		Short: "Check the dataset for duplicate variable names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(args[0])
			if err != nil {
				return err
			}
			if err := root.CheckSemantics(!shallow); err != nil {
				return err
			}
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: ok (%d variables, %d leaves)\n",
				root.Name(),
				root.ElementCount(false),
				root.ElementCount(true),
			)
			return nil
		},
	}
	cmd.Flags().BoolVar(&shallow, "shallow", false, "only check the top-level structure")
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [dataset.toml] [path]",
		Short: "Print one variable addressed by a dotted path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(args[0])
			if err != nil {
				return err
			}
			v, err := root.Variable(args[1])
			if err != nil {
				return err
			}
			return v.PrintVal(cmd.OutOrStdout(), "", true)
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [dataset.toml] [out.dods]",
		Short: "Write the dataset declaration and XDR body to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(args[0])
			if err != nil {
				return err
			}
			if err := root.CheckSemantics(true); err != nil {
				return err
			}
			start := time.Now()
			n, err := writeDataFile(args[1], root)
			observability.RecordCodec(root.Name(), observability.OpEncode, n, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("encode %s: %w", root.Name(), err)
			}
			log.Info().Str("dataset", root.Name()).Int64("bytes", n).Str("path", args[1]).Msg("encoded")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d body bytes to %s\n", n, args[1])
			return nil
		},
	}
}

// writeDataFile writes root's response to a temporary file next to path and
// renames it into place, so a failed write leaves path untouched.
func writeDataFile(path string, root dap.BaseType) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dapctl-*.dods")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	n, err := frame.WriteResponse(tmp, root)
	if err != nil {
		return n, err
	}
	if err := tmp.Close(); err != nil {
		return n, err
	}
	return n, os.Rename(tmp.Name(), path)
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "decode [dataset.toml] [in.dods]",
		Short: "Read a data file laid out like the dataset and print its values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(args[0])
			if err != nil {
				return err
			}
			if err := root.CheckSemantics(true); err != nil {
				return err
			}
			in, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer in.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			decl, n, err := frame.ReadResponse(
				in,
				root,
				opts.cfg.ServerVersion,
				protocol.ContextProbe(ctx),
				opts.cfg.Limits,
			)
			observability.RecordCodec(root.Name(), observability.OpDecode, n, time.Since(start), err)
			if err != nil {
				return fmt.Errorf("decode %s: %w", root.Name(), err)
			}
			if err := frame.MatchDecl(decl, root); err != nil {
				if strict {
					return err
				}
				log.Warn().Err(err).Str("dataset", root.Name()).Msg("response declaration differs from dataset")
			}
			log.Debug().Str("dataset", root.Name()).Int64("bytes", n).Str("server", opts.cfg.ServerVersion.String()).Msg("decoded")
			return root.PrintVal(cmd.OutOrStdout(), "", true)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the response declaration differs from the dataset")
	return cmd
}
