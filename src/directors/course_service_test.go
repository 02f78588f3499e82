package directors

import (
	"rollbook/src/models"
	"rollbook/src/store"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourseService_AddCourse(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.courses.AddCourse(&models.Course{Code: "CS101", Name: "Intro", Units: "3"}))
	require.ErrorIs(t, stack.courses.AddCourse(&models.Course{Code: "cs101", Name: "Dup", Units: "3"}),
		store.ErrCourseAlreadyExists)

	require.ErrorIs(t, stack.courses.AddCourse(&models.Course{Code: "", Name: "Bad"}), ErrInvalidCourseCode)
	require.ErrorIs(t, stack.courses.AddCourse(&models.Course{Code: "a,b", Name: "Bad"}), ErrInvalidCourseCode)

	require.Contains(t, stack.audit.Entries(), "Admin added course CS101")
}

func TestCourseService_EditCourse(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.courses.AddCourse(&models.Course{Code: "CS101", Name: "Intro", Units: "3"}))
	require.NoError(t, stack.courses.EditCourse(&models.Course{Code: "CS101", Name: "Intro to CS", Units: "4"}))

	got, err := stack.courses.GetCourse("CS101")
	require.NoError(t, err)
	require.Equal(t, "Intro to CS", got.Name)

	require.Contains(t, stack.audit.Entries(), "Admin edited course CS101")
}

func TestCourseService_DeleteCourseCascadesEnrollments(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))
	s2 := validStudent("S2")
	s2.Name = "Bob"
	require.NoError(t, stack.students.AddStudent(s2))
	require.NoError(t, stack.courses.AddCourse(&models.Course{Code: "CS101", Name: "Intro", Units: "3"}))

	require.NoError(t, stack.enrollments.Enroll("S1", "CS101"))
	require.NoError(t, stack.enrollments.Enroll("S2", "CS101"))

	require.NoError(t, stack.courses.DeleteCourse("CS101"))

	_, err := stack.enrollments.StudentsForCourse("CS101")
	require.ErrorIs(t, err, store.ErrCourseNotFound)

	// Both prior enrollment rows are gone for both students.
	courses, err := stack.enrollments.CoursesForStudent("S1")
	require.NoError(t, err)
	require.Empty(t, courses)
	courses, err = stack.enrollments.CoursesForStudent("S2")
	require.NoError(t, err)
	require.Empty(t, courses)

	require.Contains(t, stack.audit.Entries(), "Admin deleted course CS101")
}
