package store

// Add custom error definitions here
import "errors"

var ErrStudentNotFound = errors.New("student not found")
var ErrStudentAlreadyExists = errors.New("student already exists")

var ErrCourseNotFound = errors.New("course not found")
var ErrCourseAlreadyExists = errors.New("course already exists")

var ErrAlreadyEnrolled = errors.New("already enrolled")
var ErrNotEnrolled = errors.New("not enrolled")
