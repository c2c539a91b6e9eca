package logging

import "github.com/goliatone/go-readmegen/pkg/interfaces"

// WithFields scopes a logger with structured fields when the implementation
// supports field chaining. Loggers without the FieldsLogger extension come
// back unchanged, as do nil loggers and empty field maps. The map is copied
// so callers may reuse or mutate theirs afterwards.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return fieldsLogger.WithFields(copied)
}
