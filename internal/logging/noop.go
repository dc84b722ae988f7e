package logging

import "github.com/emirozcannn/dietitian-platform-oguzyolyapan-v2/pkg/interfaces"

// NoOp returns a logger that drops every entry. Services default to it so
// logging stays optional in tests and embedded use.
func NoOp() interfaces.Logger {
	return noOpLogger{}
}

type noOpLogger struct{}

func (noOpLogger) Trace(string, ...any) {}
func (noOpLogger) Debug(string, ...any) {}
func (noOpLogger) Info(string, ...any)  {}
func (noOpLogger) Warn(string, ...any)  {}
func (noOpLogger) Error(string, ...any) {}
func (noOpLogger) Fatal(string, ...any) {}

func (n noOpLogger) WithFields(map[string]any) interfaces.Logger { return n }

// NoOpProvider returns a provider whose loggers drop everything.
func NoOpProvider() interfaces.LoggerProvider {
	return noOpProvider{}
}

type noOpProvider struct{}

func (noOpProvider) GetLogger(string) interfaces.Logger { return NoOp() }

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fl, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return fl.WithFields(copied)
	}
	return logger
}
