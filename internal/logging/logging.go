// Package logging provides logger creation.
package logging

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/dekarrin/jellog"
)

// Logger is an object that is used to log messages. Use New to create one.
type Logger interface {
	Debug(string)
	Debugf(string, ...interface{})
	Error(string)
	Errorf(string, ...interface{})
	Info(string)
	Infof(string, ...interface{})
	Trace(string)
	Tracef(string, ...interface{})
	Warn(string)
	Warnf(string, ...interface{})

	// DebugBreak adds a 'break' between events in the log at Debug level. The
	// meaning of a break varies based on the underlying log; for text-based
	// logs, it is generally a newline character.
	DebugBreak()
	ErrorBreak()
	InfoBreak()
	TraceBreak()
	WarnBreak()
}

// Provider is the type of logging library to use for a Logger.
type Provider int

const (
	NoLog Provider = iota
	Jellog
	StdLog
)

func (p Provider) String() string {
	switch p {
	case NoLog:
		return "none"
	case Jellog:
		return "jellog"
	case StdLog:
		return "std"
	default:
		return fmt.Sprintf("Provider(%d)", int(p))
	}
}

// ParseProvider parses a string containing the name of a Provider. Matching is
// not case-sensitive and the empty string is parsed as NoLog.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(s) {
	case NoLog.String(), "":
		return NoLog, nil
	case Jellog.String():
		return Jellog, nil
	case StdLog.String():
		return StdLog, nil
	default:
		return NoLog, fmt.Errorf("unknown logging provider %q", s)
	}
}

// New creates a new logger of the given provider. If filename is blank, it will
// not log to disk, only stderr, and the stderr logger will be configured at
// trace level instead of info level.
func New(p Provider, filename string) (Logger, error) {
	var err error

	switch p {
	case NoLog:
		return nil, errors.New("log provider cannot be NoLog")
	case Jellog:
		var logOut *jellog.FileHandler
		if filename != "" {
			logOut, err = jellog.OpenFile(filename, nil)
			if err != nil {
				return nil, fmt.Errorf("open logfile: %q: %w", filename, err)
			}
		}
		j := jellog.New(jellog.Defaults[string]().WithComponent("inssort"))

		if filename != "" {
			j.AddHandler(jellog.LvTrace, logOut)
			j.AddHandler(jellog.LvInfo, jellog.NewStderrHandler(nil))
		} else {
			j.AddHandler(jellog.LvTrace, jellog.NewStderrHandler(nil))
		}

		return jellogLogger{j: j}, nil
	case StdLog:
		var logWriter io.Writer = os.Stderr
		if filename != "" {
			fileWriter, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return nil, fmt.Errorf("open logfile: %q: %w", filename, err)
			}
			logWriter = io.MultiWriter(os.Stderr, fileWriter)
		}
		return stdLogger{std: stdlog.New(logWriter, "", stdlog.Ldate|stdlog.Ltime|stdlog.LUTC)}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", p.String())
	}
}

// WithRun returns a Logger that prefixes every message with the given run ID.
func WithRun(log Logger, runID string) Logger {
	return runLogger{Logger: log, prefix: "[" + runID + "] "}
}

// NoOpLogger is a logger that performs no operations.
type NoOpLogger struct{}

func (log NoOpLogger) Debug(msg string)                    {}
func (log NoOpLogger) Warn(msg string)                     {}
func (log NoOpLogger) Trace(msg string)                    {}
func (log NoOpLogger) Info(msg string)                     {}
func (log NoOpLogger) Error(msg string)                    {}
func (log NoOpLogger) Debugf(msg string, a ...interface{}) {}
func (log NoOpLogger) Warnf(msg string, a ...interface{})  {}
func (log NoOpLogger) Tracef(msg string, a ...interface{}) {}
func (log NoOpLogger) Infof(msg string, a ...interface{})  {}
func (log NoOpLogger) Errorf(msg string, a ...interface{}) {}
func (log NoOpLogger) ErrorBreak()                         {}
func (log NoOpLogger) InfoBreak()                          {}
func (log NoOpLogger) WarnBreak()                          {}
func (log NoOpLogger) TraceBreak()                         {}
func (log NoOpLogger) DebugBreak()                         {}

type runLogger struct {
	Logger
	prefix string
}

func (log runLogger) Debug(msg string) { log.Logger.Debug(log.prefix + msg) }
func (log runLogger) Error(msg string) { log.Logger.Error(log.prefix + msg) }
func (log runLogger) Info(msg string)  { log.Logger.Info(log.prefix + msg) }
func (log runLogger) Trace(msg string) { log.Logger.Trace(log.prefix + msg) }
func (log runLogger) Warn(msg string)  { log.Logger.Warn(log.prefix + msg) }

func (log runLogger) Debugf(msg string, a ...interface{}) { log.Logger.Debugf(log.prefix+msg, a...) }
func (log runLogger) Errorf(msg string, a ...interface{}) { log.Logger.Errorf(log.prefix+msg, a...) }
func (log runLogger) Infof(msg string, a ...interface{})  { log.Logger.Infof(log.prefix+msg, a...) }
func (log runLogger) Tracef(msg string, a ...interface{}) { log.Logger.Tracef(log.prefix+msg, a...) }
func (log runLogger) Warnf(msg string, a ...interface{})  { log.Logger.Warnf(log.prefix+msg, a...) }

type stdLogger struct {
	std *stdlog.Logger
}

func (log stdLogger) Trace(msg string) {
	log.std.Print("TRACE " + msg)
}

func (log stdLogger) Tracef(msg string, a ...interface{}) {
	log.std.Printf("TRACE "+msg, a...)
}

func (log stdLogger) TraceBreak() {
	log.std.Printf("")
}

func (log stdLogger) Debug(msg string) {
	log.std.Print("DEBUG " + msg)
}

func (log stdLogger) Debugf(msg string, a ...interface{}) {
	log.std.Printf("DEBUG "+msg, a...)
}

func (log stdLogger) DebugBreak() {
	log.std.Printf("")
}

func (log stdLogger) Info(msg string) {
	log.std.Print("INFO  " + msg)
}

func (log stdLogger) Infof(msg string, a ...interface{}) {
	log.std.Printf("INFO  "+msg, a...)
}

func (log stdLogger) InfoBreak() {
	log.std.Printf("")
}

func (log stdLogger) Warn(msg string) {
	log.std.Print("WARN  " + msg)
}

func (log stdLogger) Warnf(msg string, a ...interface{}) {
	log.std.Printf("WARN  "+msg, a...)
}

func (log stdLogger) WarnBreak() {
	log.std.Printf("")
}

func (log stdLogger) Error(msg string) {
	log.std.Print("ERROR " + msg)
}

func (log stdLogger) Errorf(msg string, a ...interface{}) {
	log.std.Printf("ERROR "+msg, a...)
}

func (log stdLogger) ErrorBreak() {
	log.std.Printf("")
}

type jellogLogger struct {
	j jellog.Logger[string]
}

func (log jellogLogger) Debug(msg string) {
	log.j.Debug(msg)
}

func (log jellogLogger) Debugf(msg string, a ...interface{}) {
	log.j.Debugf(msg, a...)
}

func (log jellogLogger) Warn(msg string) {
	log.j.Warn(msg)
}

func (log jellogLogger) Warnf(msg string, a ...interface{}) {
	log.j.Warnf(msg, a...)
}

func (log jellogLogger) Trace(msg string) {
	log.j.Trace(msg)
}

func (log jellogLogger) Tracef(msg string, a ...interface{}) {
	log.j.Tracef(msg, a...)
}

func (log jellogLogger) Info(msg string) {
	log.j.Info(msg)
}

func (log jellogLogger) Infof(msg string, a ...interface{}) {
	log.j.Infof(msg, a...)
}

func (log jellogLogger) Error(msg string) {
	log.j.Error(msg)
}

func (log jellogLogger) Errorf(msg string, a ...interface{}) {
	log.j.Errorf(msg, a...)
}

func (log jellogLogger) ErrorBreak() {
	log.j.InsertBreak(jellog.LvError)
}

func (log jellogLogger) InfoBreak() {
	log.j.InsertBreak(jellog.LvInfo)
}

func (log jellogLogger) WarnBreak() {
	log.j.InsertBreak(jellog.LvWarn)
}

func (log jellogLogger) TraceBreak() {
	log.j.InsertBreak(jellog.LvTrace)
}

func (log jellogLogger) DebugBreak() {
	log.j.InsertBreak(jellog.LvDebug)
}
