// File: pkg/merge/execute.go
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Execute is the entry point for the merge package. It resolves the run
// configuration (folder path, merge profile) and merges the folder. The
// returned error is fatal: the run could not start at all. A run that
// completed with per-file errors or warnings returns a nil error; the Summary
// carries the details.
func Execute(args Arguments, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	profile := DefaultProfile()
	if args.ProfilePath != "" {
		p, err := LoadProfile(args.ProfilePath)
		if err != nil {
			logger.Error("Failed to load merge profile", zap.String("profile", args.ProfilePath), zap.Error(err))
			return Summary{}, err
		}
		profile = p
		logger.Debug("Loaded merge profile",
			zap.String("profile", args.ProfilePath),
			zap.Int("classCount", len(profile.Classes)))
	}

	folder, err := filepath.Abs(args.Folder)
	if err != nil {
		logger.Error("Failed to resolve folder path", zap.String("folder", args.Folder), zap.Error(err))
		return Summary{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(folder)
	if err != nil {
		return Summary{}, fmt.Errorf("cannot access folder: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("not a folder: %s", folder)
	}

	summary := Run(folder, profile, logger, args.OnProgress)
	if summary.Fatal() {
		return summary, fmt.Errorf("merge failed: %w", summary.Errors[0].Err)
	}
	return summary, nil
}

// Run merges every class of the profile found in folder and returns a
// Summary. The call is stateless: each invocation rebuilds everything from
// the folder's current contents, and the same contents always produce
// byte-identical outputs. Classes are processed independently; a failure in
// one class never stops the others.
func Run(folder string, profile Profile, logger *zap.Logger, onProgress ProgressFunc) Summary {
	startTime := time.Now()
	logger.Info("Starting merge", zap.String("folder", folder))

	summary := Summary{Folder: folder}

	groups, err := Discover(folder, profile, logger)
	if err != nil {
		summary.Errors = append(summary.Errors, FileError{Err: err})
		return summary
	}

	total := 0
	for _, g := range groups {
		total += len(g.Files)
	}

	processed := 0
	for _, g := range groups {
		class := g.Class
		onFile := func(path string) {
			processed++
			if onProgress != nil {
				onProgress(ProgressUpdate{
					Processed: processed,
					Total:     total,
					Class:     class,
					File:      path,
				})
			}
		}

		res := processGroup(g, folder, logger, onFile)
		summary.Groups = append(summary.Groups, res)
		if res.OutputPath != "" {
			summary.Written = append(summary.Written, res.OutputPath)
		}
	}

	logger.Info("Merge completed",
		zap.Int("inputFiles", total),
		zap.Strings("outputFiles", summary.Written),
		zap.Int("warnings", len(summary.AllWarnings())),
		zap.Int("errors", len(summary.AllErrors())),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary
}
