package directors

import (
	"fmt"
	"rollbook/src/audit"
	"rollbook/src/helpers"
	"rollbook/src/models"
	"rollbook/src/settings"
	"rollbook/src/store"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StudentService owns the student collection: creation with field
// validation, edits, cascading deletes, and credential checks.
type StudentService struct {
	store       store.StudentStore
	enrollments store.EnrollmentStore
	settings    *settings.Arguments
	auditLog    audit.Sink
	logger      *zap.SugaredLogger
}

func NewStudentService(studentStore store.StudentStore, enrollmentStore store.EnrollmentStore,
	settings *settings.Arguments, auditLog audit.Sink, logger *zap.SugaredLogger) *StudentService {
	return &StudentService{
		store:       studentStore,
		enrollments: enrollmentStore,
		settings:    settings,
		auditLog:    auditLog,
		logger:      logger,
	}
}

// ValidateNewStudent checks the creation-time field predicates without
// touching the store. The session layer uses it to re-prompt per field.
func ValidateNewStudent(student *models.Student) error {
	if !helpers.IsAlphanumeric(student.ID) {
		return ErrInvalidStudentID
	}
	if !helpers.IsLettersOnly(student.Name) {
		return ErrInvalidStudentName
	}
	if !helpers.IsWholeNumber(student.Age) {
		return ErrInvalidStudentAge
	}
	return nil
}

// AddStudent validates and appends one student row. IDs are unique
// case-insensitively.
func (s *StudentService) AddStudent(student *models.Student) error {
	if err := ValidateNewStudent(student); err != nil {
		return err
	}

	exists, err := s.store.StudentExists(student.ID)
	if err != nil {
		return fmt.Errorf("failed to check student %s: %w", student.ID, err)
	}
	if exists {
		return store.ErrStudentAlreadyExists
	}

	if err := s.store.AddStudent(student); err != nil {
		return err
	}

	s.logger.Infow("Student added", "id", student.ID)
	s.auditLog.Log("Admin added student " + student.ID)
	return nil
}

func (s *StudentService) GetStudent(id string) (*models.Student, error) {
	return s.store.GetStudentByID(id)
}

func (s *StudentService) AllStudents() ([]models.Student, error) {
	return s.store.GetAllStudents()
}

// EditStudent persists an admin edit of an existing row.
func (s *StudentService) EditStudent(student *models.Student) error {
	if err := s.store.UpdateStudent(student); err != nil {
		return err
	}

	s.logger.Infow("Student edited", "id", student.ID)
	s.auditLog.Log("Admin edited student " + student.ID)
	return nil
}

// EditProfile persists a student's self-edit. Same rewrite as
// EditStudent, different audit attribution.
func (s *StudentService) EditProfile(student *models.Student) error {
	if err := s.store.UpdateStudent(student); err != nil {
		return err
	}

	s.logger.Infow("Profile edited", "id", student.ID)
	s.auditLog.Log("Student " + student.ID + " edited profile")
	return nil
}

// DeleteStudent removes the student row and every enrollment row that
// references it. There is no transaction across the two files: both
// rewrites are attempted and their failures aggregated.
func (s *StudentService) DeleteStudent(id string) error {
	exists, err := s.store.StudentExists(id)
	if err != nil {
		return fmt.Errorf("failed to check student %s: %w", id, err)
	}
	if !exists {
		return store.ErrStudentNotFound
	}

	var errs error
	errs = multierr.Append(errs, s.store.RemoveStudent(id))
	errs = multierr.Append(errs, s.enrollments.RemoveAllForStudent(id))
	if errs != nil {
		return fmt.Errorf("failed to delete student %s: %w", id, errs)
	}

	s.logger.Infow("Student deleted", "id", id)
	s.auditLog.Log("Admin deleted student " + id)
	return nil
}

// Authenticate matches a student row by id (case-insensitive) and
// password (exact).
func (s *StudentService) Authenticate(id, password string) (*models.Student, error) {
	student, err := s.store.GetStudentByID(id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if student.Password != password {
		return nil, ErrInvalidCredentials
	}

	return student, nil
}
