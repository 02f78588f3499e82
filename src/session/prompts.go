package session

import (
	"errors"
	"fmt"
	"rollbook/src/helpers"
)

// Field predicates shared by the creation prompts. The messages are
// user-facing, printed inline by readValidated.

func validateStudentID(v string) error {
	if !helpers.IsAlphanumeric(v) {
		return errors.New("Student ID must be alphanumeric.")
	}
	return nil
}

func validateStudentName(v string) error {
	if !helpers.IsLettersOnly(v) {
		return errors.New("Name must contain only letters and spaces.")
	}
	return nil
}

func validateStudentAge(v string) error {
	if !helpers.IsWholeNumber(v) {
		return errors.New("Age must be a whole number.")
	}
	return nil
}

func isWholeNumber(v string) bool {
	return helpers.IsWholeNumber(v)
}

// promptEdit shows the current value and keeps it when the input is
// empty.
func (s *Session) promptEdit(label string, field *string) {
	value := s.readLine(fmt.Sprintf("Edit %s (%s): ", label, *field))
	if value != "" {
		*field = value
	}
}

// reportFailure surfaces a storage-level failure for the current
// operation. Prior on-disk state remains the source of truth.
func (s *Session) reportFailure(operation string, err error) {
	s.logger.Errorw("Operation failed", "session", s.SessionID, "operation", operation, "error", err)
	fmt.Fprintf(s.out, "Operation failed: %s\n", err.Error())
}
