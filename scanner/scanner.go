package scanner

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/kenny8zeng/autoclear-backup/retention"
)

// Verdict is a filter's opinion on a single directory entry.
type Verdict int

const (
	Include Verdict = iota
	Exclude
)

// Filter decides whether a directory entry takes part in the retention pass.
// A filter error aborts the scan; exclusion is silent.
type Filter func(name string) (Verdict, error)

// MatchAll includes every entry.
func MatchAll() Filter {
	return func(string) (Verdict, error) {
		return Include, nil
	}
}

// MatchPrefix includes entries whose name starts with prefix.
func MatchPrefix(prefix string) Filter {
	return func(name string) (Verdict, error) {
		if strings.HasPrefix(name, prefix) {
			return Include, nil
		}
		return Exclude, nil
	}
}

// MatchGlob includes entries whose name matches the doublestar pattern.
func MatchGlob(pattern string) Filter {
	return func(name string) (Verdict, error) {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return Exclude, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if ok {
			return Include, nil
		}
		return Exclude, nil
	}
}

// Scan lists dir (non-recursive) and resolves one candidate per entry the
// filter includes. Entries whose metadata cannot be read are dropped without
// an error; pruning is best effort and a file we cannot stat is simply not
// ours to judge. Output order follows directory enumeration, callers sort.
func Scan(fsys afero.Fs, dir string, filter Filter, logger *slog.Logger) ([]retention.Candidate, error) {
	d, err := fsys.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	var candidates []retention.Candidate
	for _, name := range names {
		verdict, err := filter(name)
		if err != nil {
			return nil, err
		}
		if verdict == Exclude {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := fsys.Stat(path)
		if err != nil {
			logger.Debug("Skipping entry with unreadable metadata", "path", path, "error", err)
			continue
		}

		candidates = append(candidates, retention.Candidate{
			Modified: info.ModTime(),
			Path:     path,
		})
	}
	return candidates, nil
}
