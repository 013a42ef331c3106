// File: pkg/merge/helpers.go
package merge

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// writeCombined writes the merged header and data lines to outputPath,
// replacing any previous file. Every line is terminated with a single '\n'.
func writeCombined(outputPath string, header []byte, lines [][]byte, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)

	if header != nil {
		if err := writeLine(writer, header); err != nil {
			logger.Error("Failed to write header to output file", zap.String("file", outputPath), zap.Error(err))
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, line := range lines {
		if err := writeLine(writer, line); err != nil {
			logger.Error("Failed to write data line to output file", zap.String("file", outputPath), zap.Error(err))
			return fmt.Errorf("failed to write data line: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func writeLine(writer *bufio.Writer, line []byte) error {
	if _, err := writer.Write(line); err != nil {
		return err
	}
	return writer.WriteByte('\n')
}
