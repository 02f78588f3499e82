package session

import (
	"errors"
	"rollbook/src/directors"
)

// Login prompts for credentials exactly once (single-attempt policy,
// applied to both roles) and returns the authenticated actor. The
// administrator matches the fixed constants exactly; a student matches
// a row by case-insensitive id and exact password.
func Login(s *Session) (Actor, error) {
	username := s.readLine("Username (admin or student ID): ")
	password := s.readLine("Password: ")

	if username == AdminUsername && password == AdminPassword {
		s.logger.Infow("Admin authenticated", "session", s.SessionID)
		s.auditLog.Log("Admin logged in")
		return NewAdmin(s), nil
	}

	student, err := s.services.StudentService.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, directors.ErrInvalidCredentials) {
			return nil, directors.ErrInvalidCredentials
		}
		return nil, err
	}

	s.logger.Infow("Student authenticated", "session", s.SessionID, "student", student.ID)
	s.auditLog.Log("Student " + student.ID + " logged in")
	return NewStudentActor(s, *student), nil
}
