package session

import (
	"errors"
	"fmt"
	"rollbook/src/directors"
	"rollbook/src/models"
	"rollbook/src/store"
)

// Administrator credentials are fixed constants; there is exactly one
// admin account and it never lives in the student collection.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"

	adminDisplayName = "Administrator"
	adminEmail       = "admin@school.edu"
)

// Admin drives the administrator menu: full CRUD over students and
// courses plus the per-course roster view.
type Admin struct {
	*Session
}

func NewAdmin(session *Session) *Admin {
	return &Admin{Session: session}
}

func (a *Admin) ID() string          { return AdminUsername }
func (a *Admin) DisplayName() string { return adminDisplayName }

func (a *Admin) WriteMenu() {
	fmt.Fprint(a.out, "\n--- Admin Menu ---\n")
	fmt.Fprint(a.out, "1. Add Student\n")
	fmt.Fprint(a.out, "2. Add Course\n")
	fmt.Fprint(a.out, "3. View All Students\n")
	fmt.Fprint(a.out, "4. View All Courses\n")
	fmt.Fprint(a.out, "5. View Students per Course\n")
	fmt.Fprint(a.out, "6. Edit Student\n")
	fmt.Fprint(a.out, "7. Edit Course\n")
	fmt.Fprint(a.out, "8. Delete Student\n")
	fmt.Fprint(a.out, "9. Delete Course\n")
	fmt.Fprint(a.out, "10. Change Display Mode\n")
	fmt.Fprint(a.out, "11. Logout\n")
}

func (a *Admin) HandleOption(opt int) bool {
	switch opt {
	case 1:
		a.addStudent()
	case 2:
		a.addCourse()
	case 3:
		a.viewAllStudents()
	case 4:
		a.viewAllCourses()
	case 5:
		a.viewStudentsPerCourse()
	case 6:
		a.editStudent()
	case 7:
		a.editCourse()
	case 8:
		a.deleteStudent()
	case 9:
		a.deleteCourse()
	case 10:
		a.chooseDisplayMode()
	case 11:
		a.auditLog.Log(a.ID() + " logged out")
		return false
	default:
		fmt.Fprintln(a.out, "Invalid option.")
	}
	return true
}

// addStudent walks the creation prompts. ID, name, and age re-ask
// until they validate; the id prompt also rejects duplicates.
func (a *Admin) addStudent() {
	id, ok := a.readValidated("Enter Student ID: ", func(v string) error {
		if err := validateStudentID(v); err != nil {
			return err
		}
		existing, err := a.services.StudentService.GetStudent(v)
		if err == nil && existing != nil {
			return errors.New("Student ID already exists.")
		}
		return nil
	})
	if !ok {
		return
	}

	name, ok := a.readValidated("Enter Name: ", validateStudentName)
	if !ok {
		return
	}
	email := a.readLine("Enter Email: ")
	age, ok := a.readValidated("Enter Age: ", validateStudentAge)
	if !ok {
		return
	}
	program := a.readLine("Enter Program: ")
	password := a.readLine("Enter Password: ")

	student := &models.Student{
		ID:       id,
		Name:     name,
		Email:    email,
		Age:      age,
		Program:  program,
		Password: password,
	}

	if err := a.services.StudentService.AddStudent(student); err != nil {
		if errors.Is(err, store.ErrStudentAlreadyExists) {
			fmt.Fprintln(a.out, "Student ID already exists.")
			return
		}
		a.reportFailure("add student", err)
		return
	}

	fmt.Fprintln(a.out, "Student added.")
}

func (a *Admin) addCourse() {
	code, ok := a.readValidated("Enter Course Code: ", func(v string) error {
		if err := directors.ValidateCourseCode(v); err != nil {
			return errors.New("Course code must not be empty or contain commas.")
		}
		if course, err := a.services.CourseService.GetCourse(v); err == nil && course != nil {
			return errors.New("Course code already exists.")
		}
		return nil
	})
	if !ok {
		return
	}

	name := a.readLine("Enter Course Name: ")
	units, ok := a.readValidated("Enter Units: ", func(v string) error {
		if !isWholeNumber(v) {
			return errors.New("Units must be a whole number.")
		}
		return nil
	})
	if !ok {
		return
	}

	course := &models.Course{Code: code, Name: name, Units: units}
	if err := a.services.CourseService.AddCourse(course); err != nil {
		if errors.Is(err, store.ErrCourseAlreadyExists) {
			fmt.Fprintln(a.out, "Course code already exists.")
			return
		}
		a.reportFailure("add course", err)
		return
	}

	fmt.Fprintln(a.out, "Course added.")
}

func (a *Admin) viewAllStudents() {
	a.ensureMode()

	students, err := a.services.StudentService.AllStudents()
	if err != nil {
		a.reportFailure("view students", err)
		return
	}

	if err := a.renderer().RenderStudents(a.out, students); err != nil {
		a.reportFailure("view students", err)
	}
}

func (a *Admin) viewAllCourses() {
	a.ensureMode()

	courses, err := a.services.CourseService.AllCourses()
	if err != nil {
		a.reportFailure("view courses", err)
		return
	}

	if err := a.renderer().RenderCourses(a.out, courses); err != nil {
		a.reportFailure("view courses", err)
	}
}

func (a *Admin) viewStudentsPerCourse() {
	code := a.readLine("Enter Course Code: ")

	students, err := a.services.EnrollmentService.StudentsForCourse(code)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			fmt.Fprintln(a.out, "Course not found.")
			return
		}
		a.reportFailure("view students per course", err)
		return
	}

	fmt.Fprintf(a.out, "Students enrolled in %s:\n", code)
	for _, s := range students {
		fmt.Fprintf(a.out, "%s - %s\n", s.ID, s.Name)
	}
}

// editStudent prompts per field with the current value; empty input
// keeps it. The id, program, and password are not editable here.
func (a *Admin) editStudent() {
	id := a.readLine("Enter Student ID to edit: ")

	student, err := a.services.StudentService.GetStudent(id)
	if err != nil {
		fmt.Fprintln(a.out, "Student not found.")
		return
	}

	a.promptEdit("Name", &student.Name)
	a.promptEdit("Email", &student.Email)
	a.promptEdit("Age", &student.Age)
	a.promptEdit("Program", &student.Program)

	if err := a.services.StudentService.EditStudent(student); err != nil {
		a.reportFailure("edit student", err)
		return
	}

	fmt.Fprintln(a.out, "Student updated.")
}

func (a *Admin) editCourse() {
	code := a.readLine("Enter Course Code to edit: ")

	course, err := a.services.CourseService.GetCourse(code)
	if err != nil {
		fmt.Fprintln(a.out, "Course not found.")
		return
	}

	a.promptEdit("Name", &course.Name)
	a.promptEdit("Units", &course.Units)

	if err := a.services.CourseService.EditCourse(course); err != nil {
		a.reportFailure("edit course", err)
		return
	}

	fmt.Fprintln(a.out, "Course updated.")
}

func (a *Admin) deleteStudent() {
	id := a.readLine("Enter Student ID to delete: ")

	if err := a.services.StudentService.DeleteStudent(id); err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			fmt.Fprintln(a.out, "Student not found.")
			return
		}
		a.reportFailure("delete student", err)
		return
	}

	fmt.Fprintln(a.out, "Student deleted.")
}

func (a *Admin) deleteCourse() {
	code := a.readLine("Enter Course Code to delete: ")

	if err := a.services.CourseService.DeleteCourse(code); err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			fmt.Fprintln(a.out, "Course not found.")
			return
		}
		a.reportFailure("delete course", err)
		return
	}

	fmt.Fprintln(a.out, "Course deleted.")
}
