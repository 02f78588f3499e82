package directors

// Add custom error definitions here
import "errors"

// ErrInvalidCredentials is returned when a login attempt matches
// neither the administrator constants nor a student row.
var ErrInvalidCredentials = errors.New("Invalid credentials.")

var ErrInvalidStudentID = errors.New("student id must be non-empty and alphanumeric")
var ErrInvalidStudentName = errors.New("student name must contain only letters and spaces")
var ErrInvalidStudentAge = errors.New("student age must be a whole number")
var ErrInvalidCourseCode = errors.New("course code must be non-empty and free of commas")
