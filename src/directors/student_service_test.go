package directors

import (
	"rollbook/src/models"
	"rollbook/src/store"
	"testing"

	"github.com/stretchr/testify/require"
)

func validStudent(id string) *models.Student {
	return &models.Student{ID: id, Name: "Alice", Email: "a@x", Age: "20", Program: "CS", Password: "pw1"}
}

func TestStudentService_AddStudent(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))
	require.NoError(t, stack.students.AddStudent(validStudent("S2")))

	all, err := stack.students.AllStudents()
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.Contains(t, stack.audit.Entries(), "Admin added student S1")
}

func TestStudentService_AddStudentRejectsDuplicateIDCaseInsensitively(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))
	require.ErrorIs(t, stack.students.AddStudent(validStudent("s1")), store.ErrStudentAlreadyExists)

	all, err := stack.students.AllStudents()
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestStudentService_AddStudentValidatesFields(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	bad := validStudent("S 1")
	require.ErrorIs(t, stack.students.AddStudent(bad), ErrInvalidStudentID)

	bad = validStudent("S1")
	bad.Name = "Alice2"
	require.ErrorIs(t, stack.students.AddStudent(bad), ErrInvalidStudentName)

	bad = validStudent("S1")
	bad.Age = "12a"
	require.ErrorIs(t, stack.students.AddStudent(bad), ErrInvalidStudentAge)
}

func TestStudentService_DeleteStudentCascadesEnrollments(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))
	s2 := validStudent("S2")
	s2.Name = "Bob"
	require.NoError(t, stack.students.AddStudent(s2))
	require.NoError(t, stack.courses.AddCourse(&models.Course{Code: "CS101", Name: "Intro", Units: "3"}))

	require.NoError(t, stack.enrollments.Enroll("S1", "CS101"))
	require.NoError(t, stack.enrollments.Enroll("S2", "CS101"))

	require.NoError(t, stack.students.DeleteStudent("S1"))

	// Exactly S1's row and S1's enrollments go; S2 and the course stay.
	_, err := stack.students.GetStudent("S1")
	require.ErrorIs(t, err, store.ErrStudentNotFound)

	remaining, err := stack.students.AllStudents()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "S2", remaining[0].ID)

	roster, err := stack.enrollments.StudentsForCourse("CS101")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, "S2", roster[0].ID)

	require.Contains(t, stack.audit.Entries(), "Admin deleted student S1")
}

func TestStudentService_DeleteMissingStudent(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.ErrorIs(t, stack.students.DeleteStudent("S9"), store.ErrStudentNotFound)
	require.Empty(t, stack.audit.Entries())
}

func TestStudentService_Authenticate(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))

	// ID is case-insensitive, password is exact.
	student, err := stack.students.Authenticate("s1", "pw1")
	require.NoError(t, err)
	require.Equal(t, "S1", student.ID)

	_, err = stack.students.Authenticate("S1", "PW1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = stack.students.Authenticate("S9", "pw1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStudentService_EditProfileAuditsStudentActor(t *testing.T) {
	t.Parallel()
	stack := newTestStack(t)

	require.NoError(t, stack.students.AddStudent(validStudent("S1")))

	edited := validStudent("S1")
	edited.Email = "new@x"
	require.NoError(t, stack.students.EditProfile(edited))

	got, err := stack.students.GetStudent("S1")
	require.NoError(t, err)
	require.Equal(t, "new@x", got.Email)

	require.Contains(t, stack.audit.Entries(), "Student S1 edited profile")
}
