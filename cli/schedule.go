package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kenny8zeng/autoclear-backup/cli/log"
	"github.com/kenny8zeng/autoclear-backup/retention"
)

// runOnSchedule keeps the process alive and runs the cleanup on a cron
// schedule until the context is cancelled by SIGINT/SIGTERM. Each run gets
// its own id so that overlapping log lines can be told apart.
func runOnSchedule(cmd *cobra.Command, spec, dir string, policy retention.Policy) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		logger := log.With("run", uuid.NewString(), "directory", dir)
		logger.Info("Starting scheduled cleanup")
		if err := clean(cmd, afero.NewOsFs(), dir, policy, logger); err != nil {
			logger.Error("Cleanup failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule '%s': %w", spec, err)
	}

	log.Info("Running on schedule", "schedule", spec, "directory", dir, "policy", policy,
		"test", lo.Must(cmd.Flags().GetBool("test")))
	c.Start()

	<-cmd.Context().Done()
	log.Info("Shutdown signal received, waiting for the current run to finish")
	<-c.Stop().Done()
	return nil
}
