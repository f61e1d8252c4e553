package watcher

import (
	"context"
	"os"

	"github.com/QTest-hq/sjavac/internal/verifier"
	"github.com/QTest-hq/sjavac/internal/worker"
)

// Reverify verifies the changed paths that still exist. Removed files are
// skipped; their names are returned separately.
func Reverify(ctx context.Context, pool *worker.Pool, root string, paths []string) ([]*verifier.Report, []string, error) {
	var (
		jobs    []worker.Job
		removed []string
	)
	for _, p := range paths {
		name := verifier.DisplayName(root, p)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			removed = append(removed, name)
			continue
		}
		jobs = append(jobs, worker.Job{Path: p, Name: name})
	}

	reports, err := pool.Run(ctx, jobs)
	if err != nil {
		return nil, removed, err
	}
	return reports, removed, nil
}
