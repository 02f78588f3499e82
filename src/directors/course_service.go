package directors

import (
	"fmt"
	"rollbook/src/audit"
	"rollbook/src/helpers"
	"rollbook/src/models"
	"rollbook/src/settings"
	"rollbook/src/store"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// CourseService owns the course collection. Course codes compare
// case-insensitively in every path.
type CourseService struct {
	store       store.CourseStore
	enrollments store.EnrollmentStore
	settings    *settings.Arguments
	auditLog    audit.Sink
	logger      *zap.SugaredLogger
}

func NewCourseService(courseStore store.CourseStore, enrollmentStore store.EnrollmentStore,
	settings *settings.Arguments, auditLog audit.Sink, logger *zap.SugaredLogger) *CourseService {
	return &CourseService{
		store:       courseStore,
		enrollments: enrollmentStore,
		settings:    settings,
		auditLog:    auditLog,
		logger:      logger,
	}
}

// ValidateCourseCode checks the creation-time code predicate.
func ValidateCourseCode(code string) error {
	if helpers.Trim(code) == "" || strings.Contains(code, ",") {
		return ErrInvalidCourseCode
	}
	return nil
}

// AddCourse validates and appends one course row.
func (c *CourseService) AddCourse(course *models.Course) error {
	if err := ValidateCourseCode(course.Code); err != nil {
		return err
	}

	exists, err := c.store.CourseExists(course.Code)
	if err != nil {
		return fmt.Errorf("failed to check course %s: %w", course.Code, err)
	}
	if exists {
		return store.ErrCourseAlreadyExists
	}

	if err := c.store.AddCourse(course); err != nil {
		return err
	}

	c.logger.Infow("Course added", "code", course.Code)
	c.auditLog.Log("Admin added course " + course.Code)
	return nil
}

func (c *CourseService) GetCourse(code string) (*models.Course, error) {
	return c.store.GetCourseByCode(code)
}

func (c *CourseService) AllCourses() ([]models.Course, error) {
	return c.store.GetAllCourses()
}

// EditCourse persists an edit of an existing row.
func (c *CourseService) EditCourse(course *models.Course) error {
	if err := c.store.UpdateCourse(course); err != nil {
		return err
	}

	c.logger.Infow("Course edited", "code", course.Code)
	c.auditLog.Log("Admin edited course " + course.Code)
	return nil
}

// DeleteCourse removes the course row and every enrollment row that
// references it, aggregating failures across the two rewrites.
func (c *CourseService) DeleteCourse(code string) error {
	exists, err := c.store.CourseExists(code)
	if err != nil {
		return fmt.Errorf("failed to check course %s: %w", code, err)
	}
	if !exists {
		return store.ErrCourseNotFound
	}

	var errs error
	errs = multierr.Append(errs, c.store.RemoveCourse(code))
	errs = multierr.Append(errs, c.enrollments.RemoveAllForCourse(code))
	if errs != nil {
		return fmt.Errorf("failed to delete course %s: %w", code, errs)
	}

	c.logger.Infow("Course deleted", "code", code)
	c.auditLog.Log("Admin deleted course " + code)
	return nil
}
