package logger

// Logger provides interface for logging.
// Implementations: #StdLogger, #Nop.
type Logger interface {
	Trace(s string)
	Tracef(s string, v ...interface{})

	Debug(s string)
	Debugf(s string, v ...interface{})

	Info(s string)
	Infof(s string, v ...interface{})

	Warn(s string)
	Warnf(s string, v ...interface{})

	Error(s string)
	Errorf(s string, v ...interface{})
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Trace(string)                  {}
func (nopLogger) Tracef(string, ...interface{}) {}
func (nopLogger) Debug(string)                  {}
func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Info(string)                   {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warn(string)                   {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Error(string)                  {}
func (nopLogger) Errorf(string, ...interface{}) {}
