package executor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/kenny8zeng/autoclear-backup/retention"
)

// Executor applies a retention partition to the filesystem.
type Executor struct {
	Fs     afero.Fs
	DryRun bool
	Logger *slog.Logger
	Out    io.Writer
}

// Result tallies one executor pass.
type Result struct {
	Removed int
	Failed  int
}

// Apply removes every file on the remove side of the partition. In dry-run
// mode it only prints what would be removed. A failed removal is logged and
// counted, never fatal; the loop always reaches the end of the list.
func (e Executor) Apply(partition retention.Partition) Result {
	var result Result
	for _, c := range partition.Remove {
		if e.DryRun {
			fmt.Fprintf(e.Out, "remove file: %s\n", c.Path)
			continue
		}

		if err := e.Fs.Remove(c.Path); err != nil {
			e.Logger.Warn("Failed to remove file", "path", c.Path, "error", err)
			result.Failed++
			continue
		}
		e.Logger.Info("Removed file", "path", c.Path)
		result.Removed++
	}
	return result
}
