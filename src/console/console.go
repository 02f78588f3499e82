package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"rollbook/src/audit"
	"rollbook/src/directors"
	"rollbook/src/session"
	"rollbook/src/settings"
	"rollbook/src/store"

	"go.uber.org/zap"
)

// Console is the interactive driver: one banner, one login, one menu
// loop, then process exit. There is exactly one login per run.
type Console struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	services *directors.ServiceManager
	auditLog audit.Sink
	logger   *zap.SugaredLogger
}

// InitConsole builds the full stack: zap logger, storage engines,
// services, the service manager singleton, and the audit sink.
func InitConsole(config *settings.Arguments) (*Console, error) {
	var logger *zap.Logger
	var err error

	if config.Debug {
		// Development configuration with more verbose output
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		logger, err = z.Build()
	} else {
		// Production configuration
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Create a sugared logger for easier API
	sugar := logger.Sugar()

	// Replace standard log with zap
	zap.ReplaceGlobals(logger)

	studentStore, err := store.NewStudentStore(config.DataDir, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to create student store: %w", err)
	}
	courseStore, err := store.NewCourseStore(config.DataDir, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to create course store: %w", err)
	}
	enrollmentStore, err := store.NewEnrollmentStore(config.DataDir, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment store: %w", err)
	}

	auditLog := audit.Init(audit.NewFileAuditLog(config.AuditLogFile, sugar))

	studentService := directors.NewStudentService(studentStore, enrollmentStore, config, auditLog, sugar)
	courseService := directors.NewCourseService(courseStore, enrollmentStore, config, auditLog, sugar)
	enrollmentService := directors.NewEnrollmentService(enrollmentStore, studentStore, courseStore, config, auditLog, sugar)

	// Initialize the singleton
	services := directors.InitServiceManager(studentService, courseService, enrollmentService, sugar)

	return &Console{
		In:       os.Stdin,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		services: services,
		auditLog: auditLog,
		logger:   sugar,
	}, nil
}

// NewConsole wires a console over explicit collaborators. Tests use it
// with scripted input and an in-memory audit sink.
func NewConsole(in io.Reader, out, errOut io.Writer, services *directors.ServiceManager,
	auditLog audit.Sink, logger *zap.SugaredLogger) *Console {
	return &Console{
		In:       in,
		Out:      out,
		ErrOut:   errOut,
		services: services,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Run executes the banner, the single login attempt, and the menu loop
// until logout. A failed login is printed and audited, then Run
// returns nil so the process still exits with code 0.
func (c *Console) Run() error {
	fmt.Fprintln(c.Out, "=== Student Management System ===")

	sess := session.NewSession(c.In, c.Out, c.services, c.auditLog, c.logger)
	actor, err := session.Login(sess)
	if err != nil {
		msg := "Login failed: " + err.Error()
		fmt.Fprintln(c.ErrOut, msg)
		c.auditLog.Log(msg)
		c.logger.Warnw("Login failed", "session", sess.SessionID, "error", err)
		return nil
	}

	c.logger.Infow("Session started", "session", sess.SessionID, "actor", actor.ID())

	running := true
	for running {
		actor.WriteMenu()

		opt, err := sess.ReadOption()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Input closed under us; treat it like a logout.
				c.logger.Infow("Input exhausted, ending session", "session", sess.SessionID)
				break
			}
			fmt.Fprintln(c.Out, "Invalid option.")
			continue
		}

		running = actor.HandleOption(opt)
	}

	c.logger.Infow("Session ended", "session", sess.SessionID, "actor", actor.ID())
	return nil
}
