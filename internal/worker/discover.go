package worker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/QTest-hq/sjavac/internal/verifier"
)

// Matcher selects files by their path relative to the walk root.
// *config.FileMatcher satisfies it.
type Matcher interface {
	Match(rel string) bool
	ExcludesDir(rel string) bool
}

// Discover walks root and returns one job per selected file, sorted by
// name. Without a matcher every file with the source extension is taken.
func Discover(root string, matcher Matcher) ([]Job, error) {
	var jobs []Job

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if rel != "." && matcher != nil && matcher.ExcludesDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if matcher != nil {
			if !matcher.Match(rel) {
				return nil
			}
		} else if filepath.Ext(path) != verifier.Extension {
			return nil
		}

		jobs = append(jobs, Job{Path: path, Name: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })
	return jobs, nil
}
