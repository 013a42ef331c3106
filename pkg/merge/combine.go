// File: pkg/merge/combine.go
package merge

import (
	"bytes"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// combineGroup reads every file of the group in sorted order and merges their
// lines. The first header line encountered becomes the group's fixed header;
// later files whose header differs still contribute their data lines but are
// recorded as warnings. An unreadable file drops only its own contribution.
// onFile is invoked once per file, readable or not.
func combineGroup(g Group, logger *zap.Logger, onFile func(path string)) (GroupResult, [][]byte) {
	res := GroupResult{Class: g.Class, InputFiles: len(g.Files)}

	var merged [][]byte
	var fixedHeader []byte
	for _, path := range g.Files {
		fc, err := readFileContent(path, logger)
		if err != nil {
			logger.Warn("Failed to read input file",
				zap.String("class", g.Class.Name),
				zap.String("filePath", path),
				zap.Error(err))
			res.Errors = append(res.Errors, FileError{Path: path, Err: err})
			onFile(path)
			continue
		}

		if fc.header != nil {
			if fixedHeader == nil {
				fixedHeader = fc.header
				res.Header = fc.header
			} else if !bytes.Equal(fc.header, fixedHeader) {
				logger.Warn("Header mismatch",
					zap.String("filePath", path),
					zap.ByteString("fileHeader", fc.header),
					zap.ByteString("groupHeader", fixedHeader))
				res.Warnings = append(res.Warnings, Warning{
					File: path,
					Message: fmt.Sprintf("header mismatch: file header %q differs from group header %q",
						fc.header, fixedHeader),
				})
			}
		}

		merged = append(merged, fc.lines...)
		logger.Debug("Merged input file",
			zap.String("class", g.Class.Name),
			zap.String("filePath", path),
			zap.Int("dataLines", len(fc.lines)))
		onFile(path)
	}

	res.DataLines = len(merged)
	return res, merged
}

// processGroup combines one group and writes its output file. An empty group
// writes nothing; so does a group whose files were all unreadable. A write
// failure is recorded against the output path and leaves OutputPath empty.
func processGroup(g Group, folder string, logger *zap.Logger, onFile func(path string)) GroupResult {
	res, merged := combineGroup(g, logger, onFile)
	if len(g.Files) == 0 {
		logger.Debug("No input files for class, skipping output", zap.String("class", g.Class.Name))
		return res
	}
	if len(res.Errors) == len(g.Files) {
		// Every file failed to read; there is nothing to write.
		return res
	}

	outPath := filepath.Join(folder, g.Class.Output)
	if err := writeCombined(outPath, res.Header, merged, logger); err != nil {
		res.Errors = append(res.Errors, FileError{Path: outPath, Err: err})
		return res
	}
	res.OutputPath = outPath

	logger.Info("Wrote combined output",
		zap.String("class", g.Class.Name),
		zap.String("outputFile", outPath),
		zap.Int("inputFiles", res.InputFiles),
		zap.Int("dataLines", res.DataLines))
	return res
}
