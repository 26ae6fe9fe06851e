package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kenny8zeng/autoclear-backup/cli/log"
	"github.com/kenny8zeng/autoclear-backup/retention"
)

// Versioning information set at build time
var version, commit = "dev", "n/a"

var verbose bool

var autoclearCmd = &cobra.Command{
	Use:   "autoclear [DIRECTORY]",
	Short: "Autoclear prunes old backup files from a directory.",
	Long: `Autoclear prunes a flat directory of backup files, keeping a small
time-stratified subset (yesterday, last week, last month, last year, two
years ago) and deleting the rest.`,
	Args: cobra.MaximumNArgs(1),

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Init()
	},

	RunE: runClean,
}

func init() {
	autoclearCmd.AddCommand(versionCmd)

	autoclearCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	autoclearCmd.Flags().StringP("prefix", "p", "", "file prefix to filter files to be cleared")
	autoclearCmd.Flags().String("glob", "", "glob pattern to filter files to be cleared")
	autoclearCmd.Flags().BoolP("test", "t", false, "test mode, only print files to be removed, but do not actually remove them")
	autoclearCmd.Flags().String("policy", string(retention.PolicyThin), "retention policy (thin, bucket)")
	autoclearCmd.Flags().StringP("output", "o", "text", "test mode output format (text, yaml, json)")
	autoclearCmd.Flags().String("schedule", "", "cron expression; keep running and clean on this schedule")
	autoclearCmd.MarkFlagsMutuallyExclusive("prefix", "glob")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	autoclearCmd.SetOut(os.Stdout)
	if err := autoclearCmd.ExecuteContext(ctx); err != nil {
		lo.Must(fmt.Fprintln(os.Stderr, color.HiRedString(fmt.Sprint(err))))
		os.Exit(1)
	}
}
