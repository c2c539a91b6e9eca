package readmecmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

type stubReadmeService struct {
	generateResult *interfaces.BuildResult
	generateErr    error
	generateOpts   interfaces.GenerateOptions
	renderOut      []byte
	renderErr      error
	renderLanguage string
}

func (s *stubReadmeService) Generate(ctx context.Context, opts interfaces.GenerateOptions) (*interfaces.BuildResult, error) {
	s.generateOpts = opts
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.generateResult, nil
}

func (s *stubReadmeService) Render(ctx context.Context, language string) ([]byte, error) {
	s.renderLanguage = language
	if s.renderErr != nil {
		return nil, s.renderErr
	}
	return s.renderOut, nil
}

type stubParser struct {
	out []byte
	err error
}

func (p *stubParser) Parse(markdown []byte) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.out, nil
}

func (p *stubParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	return p.Parse(markdown)
}

func readmeFactory(service interfaces.ReadmeService) ReadmeServiceFactory {
	return func(repoPath string) (interfaces.ReadmeService, error) {
		return service, nil
	}
}

func TestGenerateHandlerExecute(t *testing.T) {
	service := &stubReadmeService{
		generateResult: &interfaces.BuildResult{Written: []string{"go"}},
	}
	handler := NewGenerateHandler(readmeFactory(service), nil)

	cmd := GenerateCommand{
		RepoPath:  "/tmp/sample-programs",
		Languages: []string{"go"},
		Force:     true,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !service.generateOpts.Force {
		t.Fatal("force flag not forwarded")
	}
	if len(service.generateOpts.Languages) != 1 || service.generateOpts.Languages[0] != "go" {
		t.Fatalf("languages not forwarded: %v", service.generateOpts.Languages)
	}
}

func TestGenerateHandlerRejectsInvalidMessage(t *testing.T) {
	handler := NewGenerateHandler(readmeFactory(&stubReadmeService{}), nil)

	err := handler.Execute(context.Background(), GenerateCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestGenerateHandlerSurfacesLanguageFailures(t *testing.T) {
	service := &stubReadmeService{
		generateResult: &interfaces.BuildResult{
			Errors: []interfaces.BuildError{{Language: "go", Err: errors.New("boom")}},
		},
	}
	handler := NewGenerateHandler(readmeFactory(service), nil)

	err := handler.Execute(context.Background(), GenerateCommand{RepoPath: "/tmp/sample-programs"})
	if err == nil {
		t.Fatal("expected aggregated language failure")
	}
	if !strings.Contains(err.Error(), "1 language failures") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerateHandlerPropagatesServiceError(t *testing.T) {
	service := &stubReadmeService{generateErr: errors.New("load failed")}
	handler := NewGenerateHandler(readmeFactory(service), nil)

	err := handler.Execute(context.Background(), GenerateCommand{RepoPath: "/tmp/sample-programs"})
	if err == nil {
		t.Fatal("expected service error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestPreviewHandlerWritesHTML(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "go.html")

	service := &stubReadmeService{renderOut: []byte("# Sample Programs in Go\n")}
	parser := &stubParser{out: []byte("<h1>Sample Programs in Go</h1>\n")}
	handler := NewPreviewHandler(readmeFactory(service), parser, nil)

	cmd := PreviewCommand{RepoPath: dir, Language: "go", Output: output}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if service.renderLanguage != "go" {
		t.Fatalf("unexpected rendered language: %q", service.renderLanguage)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read preview output: %v", err)
	}
	if string(data) != "<h1>Sample Programs in Go</h1>\n" {
		t.Fatalf("unexpected preview contents: %q", data)
	}
}

func TestPreviewHandlerDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	service := &stubReadmeService{renderOut: []byte("# Go\n")}
	parser := &stubParser{out: []byte("<h1>Go</h1>\n")}
	handler := NewPreviewHandler(readmeFactory(service), parser, nil)

	cmd := PreviewCommand{RepoPath: dir, Language: "go"}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "go.html")); err != nil {
		t.Fatalf("expected default output next to checkout: %v", err)
	}
}

func TestPreviewHandlerParserError(t *testing.T) {
	service := &stubReadmeService{renderOut: []byte("# Go\n")}
	parser := &stubParser{err: fmt.Errorf("bad markdown")}
	handler := NewPreviewHandler(readmeFactory(service), parser, nil)

	err := handler.Execute(context.Background(), PreviewCommand{RepoPath: t.TempDir(), Language: "go"})
	if err == nil {
		t.Fatal("expected parser error")
	}
}
