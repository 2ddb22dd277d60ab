package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"quadratic-residues/internal/residue"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("residues failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "residues",
		Short: "Print the quadratic residues of a fixed list of moduli",
		Long: `residues prints, for each modulus in 256, 9, 5, 7, 13, 17, 97, 241, 257
and 673, the sorted set of values x*x mod m on its own line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), logger)
		},
	}
}

// run builds the residue table for the default moduli and writes the report.
func run(ctx context.Context, out io.Writer, logger *zap.Logger) error {
	table, err := residue.BuildTable(ctx, residue.DefaultModuli(), residue.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "failed to build residue table")
	}

	return residue.WriteReport(out, table)
}

// newLogger returns a console logger on stderr. Per-modulus events are logged
// at debug and stay hidden, so stdout carries only the report.
func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	return config.Build()
}
