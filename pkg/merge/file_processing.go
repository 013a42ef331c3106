// File: pkg/merge/file_processing.go
package merge

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// fileContent is the parsed content of a single input file: an optional
// header line and the data lines, all with line endings stripped.
type fileContent struct {
	header []byte   // First non-blank line starting with '#', nil when absent.
	lines  [][]byte // Data lines in file order, blank lines removed.
}

// readFileContent reads and splits one input file. Lines are carried as raw
// bytes end to end, so a file with invalid UTF-8 still merges byte-for-byte;
// the validity check only informs the log.
func readFileContent(path string, logger *zap.Logger) (fileContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileContent{}, fmt.Errorf("error reading file %s: %w", path, err)
	}

	if !utf8.Valid(raw) {
		logger.Debug("File content is not valid UTF-8, merging raw bytes",
			zap.String("filePath", path))
	}

	var fc fileContent
	for _, line := range splitLines(raw) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if fc.header == nil && startsWithHash(line) {
			fc.header = line
			continue
		}
		fc.lines = append(fc.lines, line)
	}
	return fc, nil
}

// splitLines splits raw content on '\n', stripping one trailing '\r' per line
// so CRLF input normalizes to bare lines. A missing final newline still
// yields the last line.
func splitLines(raw []byte) [][]byte {
	var lines [][]byte
	for len(raw) > 0 {
		var line []byte
		if i := bytes.IndexByte(raw, '\n'); i >= 0 {
			line, raw = raw[:i], raw[i+1:]
		} else {
			line, raw = raw, nil
		}
		lines = append(lines, bytes.TrimSuffix(line, []byte{'\r'}))
	}
	return lines
}

// startsWithHash reports whether the first non-whitespace byte of line is '#'.
func startsWithHash(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	return len(trimmed) > 0 && trimmed[0] == '#'
}
