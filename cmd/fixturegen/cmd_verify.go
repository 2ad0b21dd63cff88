package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/dataset"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <dir>...",
		Short: "Recompute and check the answers of stored fixtures",
		Long: `Re-reads every *.dat / *.dat.ans pair in each directory and recomputes
the answer independently: exact rational elimination over the printed
decimals for determinants, a linear recount for range queries, a sort for
value lists.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs error
			for _, dir := range args {
				rep, err := dataset.Verify(dir)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d ok%s\n", dir, rep.Checked, kinds(rep.ByKind))
				for _, e := range multierr.Errors(err) {
					a.logger.Warn("fixture failed verification", zap.String("dir", dir), zap.Error(e))
				}
				errs = multierr.Append(errs, err)
			}
			if n := len(multierr.Errors(errs)); n > 0 {
				return fmt.Errorf("%d fixture(s) failed verification: %w", n, errs)
			}
			return nil
		},
	}
}

func kinds(by map[config.Kind]int) string {
	if len(by) == 0 {
		return ""
	}
	names := make([]string, 0, len(by))
	for k := range by {
		names = append(names, string(k))
	}
	sort.Strings(names)
	s := " ("
	for i, k := range names {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s %d", k, by[config.Kind(k)])
	}
	return s + ")"
}
