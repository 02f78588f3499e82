package directors

import (
	"fmt"
	"rollbook/src/audit"
	"rollbook/src/models"
	"rollbook/src/settings"
	"rollbook/src/store"

	"go.uber.org/zap"
)

// EnrollmentService owns the enrollment collection and the joins from
// enrollments to student and course rows.
type EnrollmentService struct {
	store    store.EnrollmentStore
	students store.StudentStore
	courses  store.CourseStore
	settings *settings.Arguments
	auditLog audit.Sink
	logger   *zap.SugaredLogger
}

func NewEnrollmentService(enrollmentStore store.EnrollmentStore, studentStore store.StudentStore,
	courseStore store.CourseStore, settings *settings.Arguments, auditLog audit.Sink,
	logger *zap.SugaredLogger) *EnrollmentService {
	return &EnrollmentService{
		store:    enrollmentStore,
		students: studentStore,
		courses:  courseStore,
		settings: settings,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Enroll adds one enrollment row. The course must exist; enrolling in
// a course the student is already in leaves the collection unchanged.
func (e *EnrollmentService) Enroll(studentID, courseCode string) error {
	exists, err := e.courses.CourseExists(courseCode)
	if err != nil {
		return fmt.Errorf("failed to check course %s: %w", courseCode, err)
	}
	if !exists {
		return store.ErrCourseNotFound
	}

	enrolled, err := e.store.IsEnrolled(studentID, courseCode)
	if err != nil {
		return fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return store.ErrAlreadyEnrolled
	}

	enrollment := &models.Enrollment{StudentID: studentID, CourseCode: courseCode}
	if err := e.store.AddEnrollment(enrollment); err != nil {
		return err
	}

	e.logger.Infow("Enrolled", "student", studentID, "course", courseCode)
	e.auditLog.Log("Student " + studentID + " enrolled in " + courseCode)
	return nil
}

// Drop removes one enrollment row.
func (e *EnrollmentService) Drop(studentID, courseCode string) error {
	enrolled, err := e.store.IsEnrolled(studentID, courseCode)
	if err != nil {
		return fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return store.ErrNotEnrolled
	}

	if err := e.store.RemoveEnrollment(studentID, courseCode); err != nil {
		return err
	}

	e.logger.Infow("Dropped", "student", studentID, "course", courseCode)
	e.auditLog.Log("Student " + studentID + " dropped course " + courseCode)
	return nil
}

// CoursesForStudent joins the student's enrollment rows to course rows.
// Enrollments whose course no longer exists are skipped.
func (e *EnrollmentService) CoursesForStudent(studentID string) ([]models.Course, error) {
	enrollments, err := e.store.EnrollmentsForStudent(studentID)
	if err != nil {
		return nil, err
	}

	var courses []models.Course
	for _, enrollment := range enrollments {
		course, err := e.courses.GetCourseByCode(enrollment.CourseCode)
		if err != nil {
			// Dangling row; tolerate it.
			e.logger.Debugf("Enrollment for %s references missing course %s", studentID, enrollment.CourseCode)
			continue
		}
		courses = append(courses, *course)
	}

	return courses, nil
}

// StudentsForCourse joins the course's enrollment rows to student rows.
// The course itself must exist.
func (e *EnrollmentService) StudentsForCourse(courseCode string) ([]models.Student, error) {
	exists, err := e.courses.CourseExists(courseCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check course %s: %w", courseCode, err)
	}
	if !exists {
		return nil, store.ErrCourseNotFound
	}

	enrollments, err := e.store.EnrollmentsForCourse(courseCode)
	if err != nil {
		return nil, err
	}

	var students []models.Student
	for _, enrollment := range enrollments {
		student, err := e.students.GetStudentByID(enrollment.StudentID)
		if err != nil {
			e.logger.Debugf("Enrollment for %s references missing student %s", courseCode, enrollment.StudentID)
			continue
		}
		students = append(students, *student)
	}

	return students, nil
}
