package session

import (
	"bufio"
	"fmt"
	"io"
	"rollbook/src/audit"
	"rollbook/src/directors"
	"rollbook/src/display"
	"rollbook/src/helpers"
	"strconv"

	"go.uber.org/zap"
)

// Actor is the authenticated role driving the menu loop. HandleOption
// returns false when the session should end.
type Actor interface {
	ID() string
	DisplayName() string
	WriteMenu()
	HandleOption(opt int) bool
}

// Session is the per-login state shared by both actors: buffered line
// input, output writer, the chosen display mode, and a session id for
// operational log correlation.
type Session struct {
	SessionID string

	in       *bufio.Reader
	out      io.Writer
	services *directors.ServiceManager
	auditLog audit.Sink
	logger   *zap.SugaredLogger

	mode display.Mode
	eof  bool
}

func NewSession(in io.Reader, out io.Writer, services *directors.ServiceManager,
	auditLog audit.Sink, logger *zap.SugaredLogger) *Session {
	return &Session{
		SessionID: helpers.GenerateUUID(),
		in:        bufio.NewReader(in),
		out:       out,
		services:  services,
		auditLog:  auditLog,
		logger:    logger,
		mode:      display.ModeUnset,
	}
}

// readLine prints the prompt and returns the next input line, trimmed.
// A read error marks the session input as exhausted.
func (s *Session) readLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		s.eof = true
	}
	return helpers.Trim(line)
}

// ReadOption reads one menu choice. Non-numeric input is an error, not
// option zero; exhausted input is io.EOF so the menu loop can end.
func (s *Session) ReadOption() (int, error) {
	line := s.readLine("Select option: ")
	if line == "" && s.eof {
		return 0, io.EOF
	}
	opt, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return opt, nil
}

// readValidated re-prompts until the entered value passes validate.
// The returned error text of a failed attempt is printed inline. ok is
// false when input runs out before a valid value arrives.
func (s *Session) readValidated(prompt string, validate func(string) error) (string, bool) {
	for {
		value := s.readLine(prompt)
		if err := validate(value); err != nil {
			fmt.Fprintf(s.out, "%s\n", err.Error())
			if s.eof {
				return "", false
			}
			continue
		}
		return value, true
	}
}

// ensureMode prompts for a display mode the first time a listing is
// requested in this session.
func (s *Session) ensureMode() {
	if s.mode == display.ModeUnset {
		s.chooseDisplayMode()
	}
}

// chooseDisplayMode asks for the session's listing style. Invalid
// input falls back to tabular with a notice.
func (s *Session) chooseDisplayMode() {
	fmt.Fprint(s.out, "\nDisplay mode:\n1. Tabular\n2. Summary\n")
	line := s.readLine("Select display mode: ")
	switch line {
	case "1":
		s.mode = display.ModeTabular
	case "2":
		s.mode = display.ModeSummary
	default:
		fmt.Fprintln(s.out, "Invalid choice, using tabular display.")
		s.mode = display.ModeTabular
	}
	s.logger.Debugw("Display mode selected", "session", s.SessionID, "mode", s.mode.String())
}

func (s *Session) renderer() display.Renderer {
	return display.RendererFor(s.mode)
}
