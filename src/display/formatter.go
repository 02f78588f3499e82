package display

import (
	"io"
	"rollbook/src/models"
)

// Mode selects how student and course listings are rendered. It is
// per-session state, chosen at the first listing and changeable from
// the admin menu.
type Mode int

const (
	ModeUnset Mode = iota
	ModeTabular
	ModeSummary
)

func (m Mode) String() string {
	switch m {
	case ModeTabular:
		return "tabular"
	case ModeSummary:
		return "summary"
	default:
		return "unset"
	}
}

type Renderer interface {
	RenderStudents(w io.Writer, students []models.Student) error
	RenderCourses(w io.Writer, courses []models.Course) error
}

// RendererFor maps a mode to its renderer. ModeUnset falls back to the
// tabular renderer; callers prompt before reaching that state.
func RendererFor(mode Mode) Renderer {
	if mode == ModeSummary {
		return &SummaryRenderer{}
	}
	return &TabularRenderer{}
}
