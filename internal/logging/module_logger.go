package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

const (
	rootModule     = "readmegen"
	catalogModule  = "readmegen.catalog"
	readmeModule   = "readmegen.readme"
	indexModule    = "readmegen.index"
	commandsModule = "readmegen.commands"
)

const (
	fieldLanguage = "language"
	fieldProject  = "project"
	fieldAction   = "build_action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CatalogLogger returns the logger namespace reserved for catalog loading.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// ReadmeLogger returns the logger namespace reserved for README builds.
func ReadmeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, readmeModule)
}

// IndexLogger returns the logger namespace reserved for the catalog index.
func IndexLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithBuildContext enriches the provided logger with common build fields such
// as language, project, and build action. Empty values are ignored.
func WithBuildContext(logger interfaces.Logger, language, project, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(language); trimmed != "" {
		fields[fieldLanguage] = trimmed
	}
	if trimmed := strings.TrimSpace(project); trimmed != "" {
		fields[fieldProject] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
