package store

import (
	"os"
	"path/filepath"
	"rollbook/src/models"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newStudentEngine(t *testing.T) (*StudentStorageEngine, string) {
	t.Helper()
	dir := t.TempDir()
	engine, err := NewStudentStore(dir, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	return engine, dir
}

func TestStudentStore_MissingFileIsEmptyCollection(t *testing.T) {
	t.Parallel()

	engine, _ := newStudentEngine(t)

	students, err := engine.GetAllStudents()
	require.NoError(t, err)
	require.Empty(t, students)

	exists, err := engine.StudentExists("S1")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = engine.GetStudentByID("S1")
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentStore_AddAndGet(t *testing.T) {
	t.Parallel()

	engine, dir := newStudentEngine(t)

	s := &models.Student{ID: "S1", Name: "Alice", Email: "alice@school.edu", Age: "20", Program: "CS", Password: "pw1"}
	require.NoError(t, engine.AddStudent(s))

	got, err := engine.GetStudentByID("S1")
	require.NoError(t, err)
	require.Equal(t, *s, *got)

	// IDs compare case-insensitively.
	exists, err := engine.StudentExists("s1")
	require.NoError(t, err)
	require.True(t, exists)

	data, err := os.ReadFile(filepath.Join(dir, StudentFileName))
	require.NoError(t, err)
	require.Equal(t, "S1,Alice,alice@school.edu,20,CS,pw1\n", string(data))
}

func TestStudentStore_UpdateReplacesOnlyMatchingRow(t *testing.T) {
	t.Parallel()

	engine, _ := newStudentEngine(t)

	require.NoError(t, engine.AddStudent(&models.Student{ID: "S1", Name: "Alice", Email: "a@x", Age: "20", Program: "CS", Password: "pw1"}))
	require.NoError(t, engine.AddStudent(&models.Student{ID: "S2", Name: "Bob", Email: "b@x", Age: "21", Program: "EE", Password: "pw2"}))

	require.NoError(t, engine.UpdateStudent(&models.Student{ID: "S1", Name: "Alicia", Email: "a@x", Age: "22", Program: "CS", Password: "pw1"}))

	s1, err := engine.GetStudentByID("S1")
	require.NoError(t, err)
	require.Equal(t, "Alicia", s1.Name)
	require.Equal(t, "22", s1.Age)

	s2, err := engine.GetStudentByID("S2")
	require.NoError(t, err)
	require.Equal(t, "Bob", s2.Name)
}

func TestStudentStore_UpdateMissingStudent(t *testing.T) {
	t.Parallel()

	engine, _ := newStudentEngine(t)
	err := engine.UpdateStudent(&models.Student{ID: "S9"})
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentStore_RemoveLeavesOtherRows(t *testing.T) {
	t.Parallel()

	engine, _ := newStudentEngine(t)

	require.NoError(t, engine.AddStudent(&models.Student{ID: "S1", Name: "Alice", Email: "a@x", Age: "20", Program: "CS", Password: "pw1"}))
	require.NoError(t, engine.AddStudent(&models.Student{ID: "S2", Name: "Bob", Email: "b@x", Age: "21", Program: "EE", Password: "pw2"}))

	require.NoError(t, engine.RemoveStudent("s1"))

	students, err := engine.GetAllStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "S2", students[0].ID)

	require.ErrorIs(t, engine.RemoveStudent("S1"), ErrStudentNotFound)
}

func TestStudentStore_MalformedRowsAreSkippedOnScan(t *testing.T) {
	t.Parallel()

	engine, dir := newStudentEngine(t)

	raw := "S1,Alice,a@x,20,CS,pw1\nnot-a-valid-row\nS2,Bob,b@x,21,EE,pw2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, StudentFileName), []byte(raw), 0644))

	students, err := engine.GetAllStudents()
	require.NoError(t, err)
	require.Len(t, students, 2)
}

func TestStudentStore_RewriteCarriesMalformedRowsVerbatim(t *testing.T) {
	t.Parallel()

	engine, dir := newStudentEngine(t)

	raw := "garbage-line\nS1,Alice,a@x,20,CS,pw1\n"
	path := filepath.Join(dir, StudentFileName)
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	require.NoError(t, engine.UpdateStudent(&models.Student{ID: "S1", Name: "Alicia", Email: "a@x", Age: "20", Program: "CS", Password: "pw1"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "garbage-line\nS1,Alicia,a@x,20,CS,pw1\n", string(data))
}

func TestStudentStore_FieldsAreTrimmedOnParse(t *testing.T) {
	t.Parallel()

	engine, dir := newStudentEngine(t)

	raw := " S1 , Alice , a@x , 20 , CS , pw1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, StudentFileName), []byte(raw), 0644))

	got, err := engine.GetStudentByID("S1")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "pw1", got.Password)
}
