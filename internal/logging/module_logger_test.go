package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

type recordingLogger struct {
	fields map[string]any
}

func (l *recordingLogger) Trace(string, ...any) {}
func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(string, ...any)  {}
func (l *recordingLogger) Warn(string, ...any)  {}
func (l *recordingLogger) Error(string, ...any) {}
func (l *recordingLogger) Fatal(string, ...any) {}

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

type recordingProvider struct {
	requested []string
	logger    *recordingLogger
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return p.logger
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	logger := ModuleLogger(provider, "readmegen.catalog")

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recording logger, got %T", logger)
	}
	if recorded.fields["module"] != "readmegen.catalog" {
		t.Fatalf("module field not attached: %v", recorded.fields)
	}
	if len(provider.requested) != 1 || provider.requested[0] != "readmegen.catalog" {
		t.Fatalf("unexpected provider requests: %v", provider.requested)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}
	ModuleLogger(provider, "")
	if len(provider.requested) != 1 || provider.requested[0] != "readmegen" {
		t.Fatalf("expected root module request, got %v", provider.requested)
	}
}

func TestModuleLoggerNilProvider(t *testing.T) {
	logger := ModuleLogger(nil, "readmegen.readme")
	if logger == nil {
		t.Fatal("expected no-op fallback logger")
	}
	logger.Info("must not panic")
}

func TestNamespaceHelpers(t *testing.T) {
	provider := &recordingProvider{logger: &recordingLogger{}}

	CatalogLogger(provider)
	ReadmeLogger(provider)
	IndexLogger(provider)
	CommandsLogger(provider)

	want := []string{"readmegen.catalog", "readmegen.readme", "readmegen.index", "readmegen.commands"}
	if len(provider.requested) != len(want) {
		t.Fatalf("unexpected request count: %v", provider.requested)
	}
	for i, name := range want {
		if provider.requested[i] != name {
			t.Fatalf("request %d = %q, want %q", i, provider.requested[i], name)
		}
	}
}

func TestWithBuildContext(t *testing.T) {
	base := &recordingLogger{}

	logger := WithBuildContext(base, "go", "hello-world", "generate")
	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recording logger, got %T", logger)
	}
	if recorded.fields["language"] != "go" {
		t.Fatalf("missing language field: %v", recorded.fields)
	}
	if recorded.fields["project"] != "hello-world" {
		t.Fatalf("missing project field: %v", recorded.fields)
	}
	if recorded.fields["build_action"] != "generate" {
		t.Fatalf("missing build_action field: %v", recorded.fields)
	}
}

func TestWithBuildContextSkipsBlankValues(t *testing.T) {
	base := &recordingLogger{}
	logger := WithBuildContext(base, "go", "  ", "")
	recorded := logger.(*recordingLogger)
	if _, ok := recorded.fields["project"]; ok {
		t.Fatal("blank project must be skipped")
	}
	if _, ok := recorded.fields["build_action"]; ok {
		t.Fatal("blank action must be skipped")
	}
}

type capturingFieldsLogger struct {
	recordingLogger
	given map[string]any
}

func (l *capturingFieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.given = fields
	return l
}

func TestWithFieldsCopiesCallerMap(t *testing.T) {
	sink := &capturingFieldsLogger{}
	fields := map[string]any{"language": "go"}

	WithFields(sink, fields)
	fields["language"] = "python"

	if sink.given["language"] != "go" {
		t.Fatalf("caller mutation leaked into scoped fields: %v", sink.given)
	}
}

func TestWithFieldsPlainLogger(t *testing.T) {
	logger := WithFields(NoOp(), map[string]any{"k": "v"})
	if logger == nil {
		t.Fatal("expected logger passthrough")
	}
}
