package helpers

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filename string, logger *zap.SugaredLogger) bool {
	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return false // File does not exist
		}

		if logger != nil {
			logger.Infof("Error checking file %s for existence: %s", filename, err)
		}
		return false // Some other error occurred
	}

	return !info.IsDir() // Return true if it's not a directory
}

// ReplaceDataFile writes data to a temporary file in the target's
// directory and atomically renames it over the target. The original is
// untouched until the rename succeeds.
func ReplaceDataFile(filePath string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempFilePath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	// Close the file before renaming
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tempFilePath, 0644); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	// Atomically replace the old file with the new one
	if err := os.Rename(tempFilePath, filePath); err != nil {
		os.Remove(tempFilePath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
