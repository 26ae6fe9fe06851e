package retention

import (
	"fmt"
	"slices"
	"time"
)

// Policy decides what the boundary sweep means for the files it marks.
//
// Both policies share the same sweep: candidates are sorted most recent
// first, and each boundary marks the first candidate strictly older than
// itself. They differ on which side of the partition the marked files land.
type Policy string

const (
	// PolicyThin removes the marked files and keeps everything else, so a run
	// only ever thins out the handful of files sitting just past a boundary.
	PolicyThin Policy = "thin"

	// PolicyBucket keeps the marked files and removes everything else,
	// leaving at most one file per boundary behind.
	PolicyBucket Policy = "bucket"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyThin, PolicyBucket:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy '%s' (expected '%s' or '%s')", s, PolicyThin, PolicyBucket)
	}
}

// Hit records one boundary finding its file: the most recent candidate
// strictly older than Boundary. Several boundaries can hit the same
// candidate when nothing falls between them.
type Hit struct {
	Boundary  time.Time
	Candidate Candidate
}

// Select partitions candidates into keep and remove sets according to the
// boundary sweep and the given policy. It is a pure function: the input slice
// is not modified, and the same inputs always produce the same partition.
//
// Candidates with equal modification times keep their input order, so the
// sweep is deterministic for a given enumeration.
func Select(candidates []Candidate, boundaries []time.Time, policy Policy) (Partition, []Hit) {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		return b.Modified.Compare(a.Modified)
	})

	marked := make([]bool, len(sorted))
	var hits []Hit

	// Each boundary scans from the most recent file down and settles on the
	// first one older than itself. The scan restarts from the top every time,
	// so a single file can absorb several consecutive boundaries.
	for _, boundary := range boundaries {
		for i, c := range sorted {
			if c.Modified.Before(boundary) {
				marked[i] = true
				hits = append(hits, Hit{Boundary: boundary, Candidate: c})
				break
			}
		}
	}

	var partition Partition
	for i, c := range sorted {
		remove := marked[i]
		if policy == PolicyBucket {
			remove = !remove
		}
		if remove {
			partition.Remove = append(partition.Remove, c)
		} else {
			partition.Keep = append(partition.Keep, c)
		}
	}
	return partition, hits
}
