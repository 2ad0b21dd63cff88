package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/dataset"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		configPath string
		workers    int
		only       []string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate fixtures for every job in a config file",
		Long: `Reads a YAML or JSON job list and writes <name><NNN>.dat and
<name><NNN>.dat.ans files for each job. Relative output paths are resolved
against the config file's directory.`,
		Example: `  fixturegen generate --config tests/config.yaml
  fixturegen generate -c config.json --workers 1 --job mtx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 0 {
				return fmt.Errorf("--workers must be >= 0, got %d", workers)
			}
			jobs, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if jobs, err = selectJobs(jobs, only); err != nil {
				return err
			}

			o := dataset.New(dataset.WithLogger(a.logger), dataset.WithWorkers(workers))
			reports, err := o.Run(cmd.Context(), jobs)
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d fixtures in %s (seed %d)\n", r.Job, r.Cases, r.Dir, r.Seed)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the job config (YAML or JSON)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Cases generated concurrently per job (0 = GOMAXPROCS)")
	cmd.Flags().StringSliceVar(&only, "job", nil, "Run only the jobs with these names")
	return cmd
}

// selectJobs keeps the jobs named in only, in config order. An empty only
// keeps everything.
func selectJobs(jobs []config.Job, only []string) ([]config.Job, error) {
	if len(only) == 0 {
		return jobs, nil
	}
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	// Every job carrying a selected name runs; names are not unique.
	found := make(map[string]bool, len(want))
	var out []config.Job
	for _, j := range jobs {
		if want[j.Name] {
			out = append(out, j)
			found[j.Name] = true
		}
	}
	if len(found) < len(want) {
		missing := make([]string, 0, len(want)-len(found))
		for name := range want {
			if !found[name] {
				missing = append(missing, name)
			}
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("no job named %s: %w", strings.Join(missing, ", "), config.ErrConfiguration)
	}
	return out, nil
}
