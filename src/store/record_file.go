package store

// This file contains the line-oriented plumbing shared by the three
// collection storage engines. A collection file holds one record per
// line, fields separated by commas, no header and no escaping.

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"rollbook/src/helpers"
	"strings"
)

const (
	StudentFileName    = "students.txt"
	CourseFileName     = "courses.txt"
	EnrollmentFileName = "enrollments.txt"
)

// readRecordLines returns every non-blank line of a collection file in
// file order. The file is re-opened on every call; a missing file is an
// empty collection, not an error.
func readRecordLines(dataDir, fileName string) ([]string, error) {
	filePath := filepath.Join(dataDir, fileName)

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening data file %s: %w", fileName, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading data file %s: %w", fileName, err)
	}

	return lines, nil
}

// appendRecordLine adds one record to the end of a collection file,
// creating the file if it does not exist yet.
func appendRecordLine(dataDir, fileName, line string) error {
	filePath := filepath.Join(dataDir, fileName)

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening data file %s: %w", fileName, err)
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("error writing to data file %s: %w", fileName, err)
	}

	return nil
}

// rewriteRecordLines replaces the whole collection file with the given
// lines via a temp file and an atomic rename, so an interrupted rewrite
// leaves the original intact.
func rewriteRecordLines(dataDir, fileName string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	filePath := filepath.Join(dataDir, fileName)
	if err := helpers.ReplaceDataFile(filePath, []byte(b.String())); err != nil {
		return fmt.Errorf("error rewriting data file %s: %w", fileName, err)
	}

	return nil
}

// splitRecordLine splits one record line into exactly want fields, each
// trimmed. ok is false when the line has fewer fields than wanted.
func splitRecordLine(line string, want int) ([]string, bool) {
	parts := strings.SplitN(line, ",", want)
	if len(parts) < want {
		return nil, false
	}
	for i, p := range parts {
		parts[i] = helpers.Trim(p)
	}
	return parts, true
}
