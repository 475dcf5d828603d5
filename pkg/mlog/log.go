// Package mlog is the common logging interface used across every layer of
// the banking core, so no package above the store level depends on a
// concrete logging library directly.
package mlog

// Logger is the common interface for log implementations.
type Logger interface {
	Info(args ...any)
	Infof(format string, args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)

	Debug(args ...any)
	Debugf(format string, args ...any)

	With(fields ...any) Logger

	Sync() error
}

// NoneLogger discards everything. Used in tests and anywhere a Logger is
// required but observability is not.
type NoneLogger struct{}

func (NoneLogger) Info(args ...any)                  {}
func (NoneLogger) Infof(format string, args ...any)  {}
func (NoneLogger) Error(args ...any)                 {}
func (NoneLogger) Errorf(format string, args ...any) {}
func (NoneLogger) Warn(args ...any)                  {}
func (NoneLogger) Warnf(format string, args ...any)  {}
func (NoneLogger) Debug(args ...any)                 {}
func (NoneLogger) Debugf(format string, args ...any) {}
func (n NoneLogger) With(fields ...any) Logger       { return n }
func (NoneLogger) Sync() error                       { return nil }
