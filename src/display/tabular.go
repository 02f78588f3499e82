package display

import (
	"fmt"
	"io"
	"rollbook/src/models"
)

// TabularRenderer prints every field of every row, tab-separated, with
// a header line. Student passwords are never rendered.
type TabularRenderer struct{}

func (t *TabularRenderer) RenderStudents(w io.Writer, students []models.Student) error {
	if _, err := fmt.Fprintf(w, "\nID\tName\tEmail\tAge\tProgram\n"); err != nil {
		return err
	}
	for _, s := range students {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Age, s.Program); err != nil {
			return err
		}
	}
	return nil
}

func (t *TabularRenderer) RenderCourses(w io.Writer, courses []models.Course) error {
	if _, err := fmt.Fprintf(w, "\nCode\tName\tUnits\n"); err != nil {
		return err
	}
	for _, c := range courses {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", c.Code, c.Name, c.Units); err != nil {
			return err
		}
	}
	return nil
}
