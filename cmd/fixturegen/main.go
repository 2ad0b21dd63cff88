package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fixturegen/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

// app carries state shared by the subcommands for one invocation.
type app struct {
	logLevel string
	logger   *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate labeled test fixtures with known answers",
		Long: `fixturegen writes (input, answer) fixture pairs for numerical and
data-structure engines: matrices with a known determinant, key sets with
range-count queries, and value lists with their sorted order.

Every answer is derived while the input is built, never by solving it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", logging.DefaultLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newVerifyCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}
