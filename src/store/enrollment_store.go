package store

import (
	"fmt"
	"os"
	"rollbook/src/helpers"
	"rollbook/src/models"
	"strings"

	"go.uber.org/zap"
)

const enrollmentFieldCount = 2

type EnrollmentStore interface {
	IsEnrolled(studentID, courseCode string) (bool, error)
	GetAllEnrollments() ([]models.Enrollment, error)
	EnrollmentsForStudent(studentID string) ([]models.Enrollment, error)
	EnrollmentsForCourse(courseCode string) ([]models.Enrollment, error)
	AddEnrollment(enrollment *models.Enrollment) error
	RemoveEnrollment(studentID, courseCode string) error
	RemoveAllForStudent(studentID string) error
	RemoveAllForCourse(courseCode string) error
}

type EnrollmentStorageEngine struct {
	DataDirectory string
	logger        *zap.SugaredLogger
}

func NewEnrollmentStore(dataDir string, logger *zap.SugaredLogger) (*EnrollmentStorageEngine, error) {
	store := &EnrollmentStorageEngine{
		DataDirectory: dataDir,
		logger:        logger,
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(store.DataDirectory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", store.DataDirectory, err)
	}

	return store, nil
}

func formatEnrollmentRow(e *models.Enrollment) string {
	return strings.Join([]string{e.StudentID, e.CourseCode}, ",")
}

func parseEnrollmentRow(line string) (models.Enrollment, bool) {
	fields, ok := splitRecordLine(line, enrollmentFieldCount)
	if !ok {
		return models.Enrollment{}, false
	}
	return models.Enrollment{
		StudentID:  fields[0],
		CourseCode: fields[1],
	}, true
}

func enrollmentMatches(e *models.Enrollment, studentID, courseCode string) bool {
	return helpers.EqualsIgnoreCase(e.StudentID, studentID) &&
		helpers.EqualsIgnoreCase(e.CourseCode, courseCode)
}

func (e *EnrollmentStorageEngine) IsEnrolled(studentID, courseCode string) (bool, error) {
	lines, err := readRecordLines(e.DataDirectory, EnrollmentFileName)
	if err != nil {
		return false, err
	}

	for _, line := range lines {
		enrollment, ok := parseEnrollmentRow(line)
		if !ok {
			continue
		}
		if enrollmentMatches(&enrollment, studentID, courseCode) {
			return true, nil
		}
	}

	return false, nil
}

func (e *EnrollmentStorageEngine) GetAllEnrollments() ([]models.Enrollment, error) {
	lines, err := readRecordLines(e.DataDirectory, EnrollmentFileName)
	if err != nil {
		return nil, err
	}

	enrollments := make([]models.Enrollment, 0, len(lines))
	for _, line := range lines {
		enrollment, ok := parseEnrollmentRow(line)
		if !ok {
			e.logger.Warnf("Skipping malformed enrollment row: %q", line)
			continue
		}
		enrollments = append(enrollments, enrollment)
	}

	return enrollments, nil
}

func (e *EnrollmentStorageEngine) EnrollmentsForStudent(studentID string) ([]models.Enrollment, error) {
	all, err := e.GetAllEnrollments()
	if err != nil {
		return nil, err
	}

	var matches []models.Enrollment
	for _, enrollment := range all {
		if helpers.EqualsIgnoreCase(enrollment.StudentID, studentID) {
			matches = append(matches, enrollment)
		}
	}

	return matches, nil
}

func (e *EnrollmentStorageEngine) EnrollmentsForCourse(courseCode string) ([]models.Enrollment, error) {
	all, err := e.GetAllEnrollments()
	if err != nil {
		return nil, err
	}

	var matches []models.Enrollment
	for _, enrollment := range all {
		if helpers.EqualsIgnoreCase(enrollment.CourseCode, courseCode) {
			matches = append(matches, enrollment)
		}
	}

	return matches, nil
}

// AddEnrollment appends one row. Callers check IsEnrolled first.
func (e *EnrollmentStorageEngine) AddEnrollment(enrollment *models.Enrollment) error {
	return appendRecordLine(e.DataDirectory, EnrollmentFileName, formatEnrollmentRow(enrollment))
}

// RemoveEnrollment rewrites the collection omitting the matching pair.
func (e *EnrollmentStorageEngine) RemoveEnrollment(studentID, courseCode string) error {
	lines, err := readRecordLines(e.DataDirectory, EnrollmentFileName)
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		enrollment, ok := parseEnrollmentRow(line)
		if ok && enrollmentMatches(&enrollment, studentID, courseCode) {
			found = true
			continue
		}
		out = append(out, line)
	}

	if !found {
		return ErrNotEnrolled
	}

	return rewriteRecordLines(e.DataDirectory, EnrollmentFileName, out)
}

// RemoveAllForStudent rewrites the collection omitting every row for
// the student. Removing zero rows is not an error.
func (e *EnrollmentStorageEngine) RemoveAllForStudent(studentID string) error {
	lines, err := readRecordLines(e.DataDirectory, EnrollmentFileName)
	if err != nil {
		return err
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		enrollment, ok := parseEnrollmentRow(line)
		if ok && helpers.EqualsIgnoreCase(enrollment.StudentID, studentID) {
			continue
		}
		out = append(out, line)
	}

	return rewriteRecordLines(e.DataDirectory, EnrollmentFileName, out)
}

// RemoveAllForCourse rewrites the collection omitting every row for the
// course. Removing zero rows is not an error.
func (e *EnrollmentStorageEngine) RemoveAllForCourse(courseCode string) error {
	lines, err := readRecordLines(e.DataDirectory, EnrollmentFileName)
	if err != nil {
		return err
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		enrollment, ok := parseEnrollmentRow(line)
		if ok && helpers.EqualsIgnoreCase(enrollment.CourseCode, courseCode) {
			continue
		}
		out = append(out, line)
	}

	return rewriteRecordLines(e.DataDirectory, EnrollmentFileName, out)
}
