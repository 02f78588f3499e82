package store

import (
	"fmt"
	"os"
	"rollbook/src/helpers"
	"rollbook/src/models"
	"strings"

	"go.uber.org/zap"
)

const studentFieldCount = 6

type StudentStore interface {
	StudentExists(id string) (bool, error)
	GetStudentByID(id string) (*models.Student, error)
	GetAllStudents() ([]models.Student, error)
	AddStudent(student *models.Student) error
	UpdateStudent(student *models.Student) error
	RemoveStudent(id string) error
}

type StudentStorageEngine struct {
	DataDirectory string
	logger        *zap.SugaredLogger
}

func NewStudentStore(dataDir string, logger *zap.SugaredLogger) (*StudentStorageEngine, error) {
	store := &StudentStorageEngine{
		DataDirectory: dataDir,
		logger:        logger,
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(store.DataDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", store.DataDirectory, err)
	}

	return store, nil
}

func formatStudentRow(s *models.Student) string {
	return strings.Join([]string{s.ID, s.Name, s.Email, s.Age, s.Program, s.Password}, ",")
}

func parseStudentRow(line string) (models.Student, bool) {
	fields, ok := splitRecordLine(line, studentFieldCount)
	if !ok {
		return models.Student{}, false
	}
	return models.Student{
		ID:       fields[0],
		Name:     fields[1],
		Email:    fields[2],
		Age:      fields[3],
		Program:  fields[4],
		Password: fields[5],
	}, true
}

// StudentExists reports whether a row with the given id exists. IDs
// compare case-insensitively.
func (s *StudentStorageEngine) StudentExists(id string) (bool, error) {
	lines, err := readRecordLines(s.DataDirectory, StudentFileName)
	if err != nil {
		return false, err
	}

	for _, line := range lines {
		student, ok := parseStudentRow(line)
		if !ok {
			continue
		}
		if helpers.EqualsIgnoreCase(student.ID, id) {
			return true, nil
		}
	}

	return false, nil
}

// GetStudentByID returns the first row matching the id, or
// ErrStudentNotFound.
func (s *StudentStorageEngine) GetStudentByID(id string) (*models.Student, error) {
	lines, err := readRecordLines(s.DataDirectory, StudentFileName)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		student, ok := parseStudentRow(line)
		if !ok {
			s.logger.Debugf("Skipping malformed student row: %q", line)
			continue
		}
		if helpers.EqualsIgnoreCase(student.ID, id) {
			return &student, nil
		}
	}

	return nil, ErrStudentNotFound
}

func (s *StudentStorageEngine) GetAllStudents() ([]models.Student, error) {
	lines, err := readRecordLines(s.DataDirectory, StudentFileName)
	if err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(lines))
	for _, line := range lines {
		student, ok := parseStudentRow(line)
		if !ok {
			s.logger.Warnf("Skipping malformed student row: %q", line)
			continue
		}
		students = append(students, student)
	}

	return students, nil
}

// AddStudent appends one row. Uniqueness is not re-checked here;
// callers are expected to call StudentExists first.
func (s *StudentStorageEngine) AddStudent(student *models.Student) error {
	return appendRecordLine(s.DataDirectory, StudentFileName, formatStudentRow(student))
}

// UpdateStudent rewrites the collection with the matching row replaced.
// Rows that cannot be parsed are carried over verbatim.
func (s *StudentStorageEngine) UpdateStudent(student *models.Student) error {
	lines, err := readRecordLines(s.DataDirectory, StudentFileName)
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		existing, ok := parseStudentRow(line)
		if ok && helpers.EqualsIgnoreCase(existing.ID, student.ID) {
			out = append(out, formatStudentRow(student))
			found = true
			continue
		}
		out = append(out, line)
	}

	if !found {
		return ErrStudentNotFound
	}

	return rewriteRecordLines(s.DataDirectory, StudentFileName, out)
}

// RemoveStudent rewrites the collection omitting the matching row.
func (s *StudentStorageEngine) RemoveStudent(id string) error {
	lines, err := readRecordLines(s.DataDirectory, StudentFileName)
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		existing, ok := parseStudentRow(line)
		if ok && helpers.EqualsIgnoreCase(existing.ID, id) {
			found = true
			continue
		}
		out = append(out, line)
	}

	if !found {
		return ErrStudentNotFound
	}

	return rewriteRecordLines(s.DataDirectory, StudentFileName, out)
}
