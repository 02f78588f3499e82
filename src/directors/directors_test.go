package directors

import (
	"rollbook/src/audit"
	"rollbook/src/settings"
	"rollbook/src/store"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testStack wires real storage engines over a temp directory with an
// in-memory audit sink.
type testStack struct {
	dir         string
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
	audit       *audit.MemoryAuditLog
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	dir := t.TempDir()
	logger := zaptest.NewLogger(t).Sugar()
	args := settings.GetSettings()

	studentStore, err := store.NewStudentStore(dir, logger)
	require.NoError(t, err)
	courseStore, err := store.NewCourseStore(dir, logger)
	require.NoError(t, err)
	enrollmentStore, err := store.NewEnrollmentStore(dir, logger)
	require.NoError(t, err)

	sink := audit.NewMemoryAuditLog()

	return &testStack{
		dir:         dir,
		students:    NewStudentService(studentStore, enrollmentStore, args, sink, logger),
		courses:     NewCourseService(courseStore, enrollmentStore, args, sink, logger),
		enrollments: NewEnrollmentService(enrollmentStore, studentStore, courseStore, args, sink, logger),
		audit:       sink,
	}
}
