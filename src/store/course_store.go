package store

import (
	"fmt"
	"os"
	"rollbook/src/helpers"
	"rollbook/src/models"
	"strings"

	"go.uber.org/zap"
)

const courseFieldCount = 3

type CourseStore interface {
	CourseExists(code string) (bool, error)
	GetCourseByCode(code string) (*models.Course, error)
	GetAllCourses() ([]models.Course, error)
	AddCourse(course *models.Course) error
	UpdateCourse(course *models.Course) error
	RemoveCourse(code string) error
}

type CourseStorageEngine struct {
	DataDirectory string
	logger        *zap.SugaredLogger
}

func NewCourseStore(dataDir string, logger *zap.SugaredLogger) (*CourseStorageEngine, error) {
	store := &CourseStorageEngine{
		DataDirectory: dataDir,
		logger:        logger,
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(store.DataDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", store.DataDirectory, err)
	}

	return store, nil
}

func formatCourseRow(c *models.Course) string {
	return strings.Join([]string{c.Code, c.Name, c.Units}, ",")
}

func parseCourseRow(line string) (models.Course, bool) {
	fields, ok := splitRecordLine(line, courseFieldCount)
	if !ok {
		return models.Course{}, false
	}
	return models.Course{
		Code:  fields[0],
		Name:  fields[1],
		Units: fields[2],
	}, true
}

// CourseExists reports whether a row with the given code exists. Codes
// compare case-insensitively everywhere.
func (c *CourseStorageEngine) CourseExists(code string) (bool, error) {
	lines, err := readRecordLines(c.DataDirectory, CourseFileName)
	if err != nil {
		return false, err
	}

	for _, line := range lines {
		course, ok := parseCourseRow(line)
		if !ok {
			continue
		}
		if helpers.EqualsIgnoreCase(course.Code, code) {
			return true, nil
		}
	}

	return false, nil
}

// GetCourseByCode returns the first row matching the code, or
// ErrCourseNotFound.
func (c *CourseStorageEngine) GetCourseByCode(code string) (*models.Course, error) {
	lines, err := readRecordLines(c.DataDirectory, CourseFileName)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		course, ok := parseCourseRow(line)
		if !ok {
			c.logger.Debugf("Skipping malformed course row: %q", line)
			continue
		}
		if helpers.EqualsIgnoreCase(course.Code, code) {
			return &course, nil
		}
	}

	return nil, ErrCourseNotFound
}

func (c *CourseStorageEngine) GetAllCourses() ([]models.Course, error) {
	lines, err := readRecordLines(c.DataDirectory, CourseFileName)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(lines))
	for _, line := range lines {
		course, ok := parseCourseRow(line)
		if !ok {
			c.logger.Warnf("Skipping malformed course row: %q", line)
			continue
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// AddCourse appends one row. Callers check CourseExists first.
func (c *CourseStorageEngine) AddCourse(course *models.Course) error {
	return appendRecordLine(c.DataDirectory, CourseFileName, formatCourseRow(course))
}

// UpdateCourse rewrites the collection with the matching row replaced.
func (c *CourseStorageEngine) UpdateCourse(course *models.Course) error {
	lines, err := readRecordLines(c.DataDirectory, CourseFileName)
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		existing, ok := parseCourseRow(line)
		if ok && helpers.EqualsIgnoreCase(existing.Code, course.Code) {
			out = append(out, formatCourseRow(course))
			found = true
			continue
		}
		out = append(out, line)
	}

	if !found {
		return ErrCourseNotFound
	}

	return rewriteRecordLines(c.DataDirectory, CourseFileName, out)
}

// RemoveCourse rewrites the collection omitting the matching row.
func (c *CourseStorageEngine) RemoveCourse(code string) error {
	lines, err := readRecordLines(c.DataDirectory, CourseFileName)
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		existing, ok := parseCourseRow(line)
		if ok && helpers.EqualsIgnoreCase(existing.Code, code) {
			found = true
			continue
		}
		out = append(out, line)
	}

	if !found {
		return ErrCourseNotFound
	}

	return rewriteRecordLines(c.DataDirectory, CourseFileName, out)
}
