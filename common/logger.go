package common

import (
	"fmt"
	"os"
)

// Logger represents a minimal levelled logger.  *logrus.Logger satisfies this
// interface.
type Logger interface {
	// Debugf handles debug level messages
	Debugf(format string, args ...interface{})
	// Infof handles info level messages
	Infof(format string, args ...interface{})
	// Warnf handles warn level messages
	Warnf(format string, args ...interface{})
	// Errorf handles error level messages
	Errorf(format string, args ...interface{})
	// Fatalf handles fatal level messages, and must exit the application
	Fatalf(format string, args ...interface{})
	// Panicf handles panic level messages, and must panic the application
	Panicf(format string, args ...interface{})
}

// StubLogger satisfies the Logger interface, and simply does nothing with
// received messages
type StubLogger struct{}

func (l *StubLogger) Debugf(format string, args ...interface{}) {}
func (l *StubLogger) Infof(format string, args ...interface{})  {}
func (l *StubLogger) Warnf(format string, args ...interface{})  {}
func (l *StubLogger) Errorf(format string, args ...interface{}) {}

// Fatalf exits the application
func (l *StubLogger) Fatalf(format string, args ...interface{}) {
	os.Exit(1)
}

// Panicf panics with the formatted message
func (l *StubLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

type logPrefixer struct {
	log    Logger
	prefix string
}

func (l *logPrefixer) Debugf(format string, args ...interface{}) {
	l.log.Debugf(l.prefix+format, args...)
}

func (l *logPrefixer) Infof(format string, args ...interface{}) {
	l.log.Infof(l.prefix+format, args...)
}

func (l *logPrefixer) Warnf(format string, args ...interface{}) {
	l.log.Warnf(l.prefix+format, args...)
}

func (l *logPrefixer) Errorf(format string, args ...interface{}) {
	l.log.Errorf(l.prefix+format, args...)
}

func (l *logPrefixer) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(l.prefix+format, args...)
}

func (l *logPrefixer) Panicf(format string, args ...interface{}) {
	l.log.Panicf(l.prefix+format, args...)
}

const logPrefix = `[gomaxsun] `

var (
	// Log holds the global logger used by gomaxsun, can be set via SetLogger()
	// in the gomaxsun package
	Log Logger
)

func init() {
	Log = &logPrefixer{log: new(StubLogger), prefix: logPrefix}
}

// SetLogger wraps the supplied logger with a logPrefixer to denote gomaxsun
// logs.  A nil logger restores the StubLogger.
func SetLogger(logger Logger) {
	if logger == nil {
		logger = new(StubLogger)
	}
	Log = &logPrefixer{log: logger, prefix: logPrefix}
}
