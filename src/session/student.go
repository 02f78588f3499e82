package session

import (
	"errors"
	"fmt"
	"rollbook/src/models"
	"rollbook/src/store"
)

// StudentActor drives the student menu. Its identity is the matched
// student row; profile edits re-read the row so the session never goes
// stale.
type StudentActor struct {
	*Session
	student models.Student
}

func NewStudentActor(session *Session, student models.Student) *StudentActor {
	return &StudentActor{Session: session, student: student}
}

func (s *StudentActor) ID() string          { return s.student.ID }
func (s *StudentActor) DisplayName() string { return s.student.Name }

func (s *StudentActor) WriteMenu() {
	fmt.Fprint(s.out, "\n--- Student Menu ---\n")
	fmt.Fprint(s.out, "1. View Profile\n")
	fmt.Fprint(s.out, "2. Enroll in Course\n")
	fmt.Fprint(s.out, "3. View Enrolled Courses\n")
	fmt.Fprint(s.out, "4. Edit Profile\n")
	fmt.Fprint(s.out, "5. Drop Course\n")
	fmt.Fprint(s.out, "6. Logout\n")
}

func (s *StudentActor) HandleOption(opt int) bool {
	switch opt {
	case 1:
		s.viewProfile()
	case 2:
		s.enrollCourse()
	case 3:
		s.viewEnrolledCourses()
	case 4:
		s.editProfile()
	case 5:
		s.dropCourse()
	case 6:
		s.auditLog.Log(s.ID() + " logged out")
		return false
	default:
		fmt.Fprintln(s.out, "Invalid option.")
	}
	return true
}

func (s *StudentActor) viewProfile() {
	student, err := s.services.StudentService.GetStudent(s.ID())
	if err != nil {
		fmt.Fprintln(s.out, "Student not found.")
		return
	}

	fmt.Fprintf(s.out, "\nID: %s\nName: %s\nEmail: %s\nAge: %s\nProgram: %s\n",
		student.ID, student.Name, student.Email, student.Age, student.Program)
}

// enrollCourse lists the catalogue first, then prompts for a code.
func (s *StudentActor) enrollCourse() {
	courses, err := s.services.CourseService.AllCourses()
	if err != nil {
		s.reportFailure("enroll", err)
		return
	}

	fmt.Fprintln(s.out, "Available courses:")
	for _, c := range courses {
		fmt.Fprintf(s.out, "%s - %s (%s units)\n", c.Code, c.Name, c.Units)
	}

	code := s.readLine("Enter Course Code to enroll: ")
	if err := s.services.EnrollmentService.Enroll(s.ID(), code); err != nil {
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			fmt.Fprintln(s.out, "Course not found.")
		case errors.Is(err, store.ErrAlreadyEnrolled):
			fmt.Fprintln(s.out, "Already enrolled in this course.")
		default:
			s.reportFailure("enroll", err)
		}
		return
	}

	fmt.Fprintln(s.out, "Enrolled in course.")
}

func (s *StudentActor) viewEnrolledCourses() {
	fmt.Fprintln(s.out, "Enrolled courses:")

	courses, err := s.services.EnrollmentService.CoursesForStudent(s.ID())
	if err != nil {
		s.reportFailure("view enrolled courses", err)
		return
	}

	if len(courses) == 0 {
		fmt.Fprintln(s.out, "None.")
		return
	}
	for _, c := range courses {
		fmt.Fprintf(s.out, "%s - %s (%s units)\n", c.Code, c.Name, c.Units)
	}
}

// editProfile lets the student change name, email, and age only. ID,
// program, and password stay fixed.
func (s *StudentActor) editProfile() {
	student, err := s.services.StudentService.GetStudent(s.ID())
	if err != nil {
		fmt.Fprintln(s.out, "Student not found.")
		return
	}

	s.promptEdit("Name", &student.Name)
	s.promptEdit("Email", &student.Email)
	s.promptEdit("Age", &student.Age)

	if err := s.services.StudentService.EditProfile(student); err != nil {
		s.reportFailure("edit profile", err)
		return
	}

	s.student = *student
	fmt.Fprintln(s.out, "Profile updated.")
}

func (s *StudentActor) dropCourse() {
	code := s.readLine("Enter Course Code to drop: ")

	if err := s.services.EnrollmentService.Drop(s.ID(), code); err != nil {
		if errors.Is(err, store.ErrNotEnrolled) {
			fmt.Fprintln(s.out, "Not enrolled in this course.")
			return
		}
		s.reportFailure("drop course", err)
		return
	}

	fmt.Fprintln(s.out, "Dropped course.")
}
