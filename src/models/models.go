package models

// Student is one row of the student collection. Every field is stored
// as text, age included.
type Student struct {
	// ID is the natural key, unique case-insensitively.
	ID string

	Name  string
	Email string
	Age   string

	// Program is the course of study, editable by the admin only.
	Program string

	// Password is stored as plaintext, matching the on-disk contract.
	Password string
}

// Course is one row of the course collection.
type Course struct {
	// Code is the natural key, unique case-insensitively.
	Code string

	Name  string
	Units string
}

// Enrollment links a student to a course. The pair is the natural key.
// Rows can dangle if their referenced student or course disappears
// outside the cascade path; scans that join must tolerate that.
type Enrollment struct {
	StudentID  string
	CourseCode string
}
