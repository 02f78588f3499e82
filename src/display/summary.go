package display

import (
	"fmt"
	"io"
	"rollbook/src/models"
)

// SummaryRenderer prints only the natural key and the name, one row
// per line.
type SummaryRenderer struct{}

func (s *SummaryRenderer) RenderStudents(w io.Writer, students []models.Student) error {
	for _, st := range students {
		if _, err := fmt.Fprintf(w, "%s - %s\n", st.ID, st.Name); err != nil {
			return err
		}
	}
	return nil
}

func (s *SummaryRenderer) RenderCourses(w io.Writer, courses []models.Course) error {
	for _, c := range courses {
		if _, err := fmt.Fprintf(w, "%s - %s\n", c.Code, c.Name); err != nil {
			return err
		}
	}
	return nil
}
