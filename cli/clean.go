package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kenny8zeng/autoclear-backup/cli/log"
	"github.com/kenny8zeng/autoclear-backup/executor"
	"github.com/kenny8zeng/autoclear-backup/retention"
	"github.com/kenny8zeng/autoclear-backup/scanner"
)

func runClean(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	policy, err := retention.ParsePolicy(lo.Must(cmd.Flags().GetString("policy")))
	if err != nil {
		return err
	}

	if schedule := lo.Must(cmd.Flags().GetString("schedule")); schedule != "" {
		return runOnSchedule(cmd, schedule, dir, policy)
	}
	return clean(cmd, afero.NewOsFs(), dir, policy, log.With("directory", dir))
}

func clean(cmd *cobra.Command, fsys afero.Fs, dir string, policy retention.Policy, logger *slog.Logger) error {
	prefix := lo.Must(cmd.Flags().GetString("prefix"))
	glob := lo.Must(cmd.Flags().GetString("glob"))

	var filter scanner.Filter
	switch {
	case prefix != "":
		cmd.Printf("clearing files with prefix: '%s'\n", prefix)
		filter = scanner.MatchPrefix(prefix)
	case glob != "":
		cmd.Printf("clearing files matching: '%s'\n", glob)
		filter = scanner.MatchGlob(glob)
	default:
		// Without a filter the tool only announces itself and touches
		// nothing: removal requires an explicit opt-in.
		cmd.Println("clearing all files in directory")
		return nil
	}

	candidates, err := scanner.Scan(fsys, dir, filter, logger)
	if err != nil {
		return err
	}

	boundaries := retention.DefaultSchedule.Boundaries(time.Now())
	partition, hits := retention.Select(candidates, boundaries, policy)

	if verbose {
		for _, hit := range hits {
			cmd.PrintErrf("boundary %s -> %s\n", hit.Boundary.Format(time.DateTime), hit.Candidate.Path)
		}
	}

	if lo.Must(cmd.Flags().GetBool("test")) {
		return renderPlan(cmd, dir, policy, partition)
	}

	result := executor.Executor{Fs: fsys, Logger: logger, Out: cmd.OutOrStdout()}.Apply(partition)
	if result.Failed > 0 {
		return fmt.Errorf("failed to remove %d of %d files", result.Failed, len(partition.Remove))
	}

	cmd.PrintErrln(color.HiGreenString("Removed %d files, kept %d", result.Removed, len(partition.Keep)))
	return nil
}

// plan is the machine-readable rendering of a partition in test mode.
type plan struct {
	Directory string   `yaml:"directory" json:"directory"`
	Policy    string   `yaml:"policy" json:"policy"`
	Keep      []string `yaml:"keep" json:"keep"`
	Remove    []string `yaml:"remove" json:"remove"`
}

func renderPlan(cmd *cobra.Command, dir string, policy retention.Policy, partition retention.Partition) error {
	switch format := lo.Must(cmd.Flags().GetString("output")); format {
	case "text":
		executor.Executor{DryRun: true, Out: cmd.OutOrStdout()}.Apply(partition)
		cmd.PrintErrln(color.HiYellowString("Would remove %d files, keep %d", len(partition.Remove), len(partition.Keep)))
		return nil
	case "yaml":
		return yaml.NewEncoder(cmd.OutOrStdout()).Encode(newPlan(dir, policy, partition))
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(newPlan(dir, policy, partition))
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func newPlan(dir string, policy retention.Policy, partition retention.Partition) plan {
	paths := func(candidates []retention.Candidate) []string {
		return lo.Map(candidates, func(c retention.Candidate, _ int) string { return c.Path })
	}
	return plan{
		Directory: dir,
		Policy:    string(policy),
		Keep:      paths(partition.Keep),
		Remove:    paths(partition.Remove),
	}
}
