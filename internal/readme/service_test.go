package readme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

type stubCatalog struct {
	loaded *interfaces.Catalog
	err    error
	calls  int
}

func (s *stubCatalog) Load(ctx context.Context) (*interfaces.Catalog, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.loaded, nil
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, loaded *interfaces.Catalog, manifest bool) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	service, err := NewService(Config{
		Catalog:         &stubCatalog{loaded: loaded},
		RepoPath:        dir,
		ManifestEnabled: manifest,
		Now:             fixedClock,
	})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return service, dir
}

func TestServiceGenerateWritesReadmes(t *testing.T) {
	loaded := testCatalog()
	service, dir := newTestService(t, loaded, true)

	result, err := service.Generate(context.Background(), interfaces.GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Written) != 1 || result.Written[0] != "go" {
		t.Fatalf("unexpected written set: %v", result.Written)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	output := filepath.Join(dir, "archive", "g", "go", "README.md")
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read generated README: %v", err)
	}
	if !strings.Contains(string(data), "# Sample Programs in Go") {
		t.Fatalf("unexpected README contents:\n%s", data)
	}

	if _, err := os.Stat(filepath.Join(dir, manifestFileName)); err != nil {
		t.Fatalf("expected manifest to be written: %v", err)
	}
}

func TestServiceGenerateSkipsUnchangedLanguages(t *testing.T) {
	loaded := testCatalog()
	service, _ := newTestService(t, loaded, true)

	if _, err := service.Generate(context.Background(), interfaces.GenerateOptions{}); err != nil {
		t.Fatalf("first Generate returned error: %v", err)
	}

	result, err := service.Generate(context.Background(), interfaces.GenerateOptions{})
	if err != nil {
		t.Fatalf("second Generate returned error: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "go" {
		t.Fatalf("expected go to be skipped, got %+v", result)
	}
	if len(result.Written) != 0 {
		t.Fatalf("nothing should be rewritten, got %v", result.Written)
	}
}

func TestServiceGenerateForceRebuilds(t *testing.T) {
	loaded := testCatalog()
	service, _ := newTestService(t, loaded, true)

	if _, err := service.Generate(context.Background(), interfaces.GenerateOptions{}); err != nil {
		t.Fatalf("first Generate returned error: %v", err)
	}

	result, err := service.Generate(context.Background(), interfaces.GenerateOptions{Force: true})
	if err != nil {
		t.Fatalf("forced Generate returned error: %v", err)
	}
	if len(result.Written) != 1 {
		t.Fatalf("expected forced rebuild, got %+v", result)
	}
}

func TestServiceGenerateDryRun(t *testing.T) {
	loaded := testCatalog()
	service, dir := newTestService(t, loaded, true)

	result, err := service.Generate(context.Background(), interfaces.GenerateOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Written) != 1 {
		t.Fatalf("dry run should still report planned writes, got %+v", result)
	}

	if _, err := os.Stat(filepath.Join(dir, "archive", "g", "go", "README.md")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not write READMEs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, manifestFileName)); !os.IsNotExist(err) {
		t.Fatalf("dry run must not write the manifest: %v", err)
	}
}

func TestServiceGenerateLanguageFilter(t *testing.T) {
	loaded := testCatalog()
	python := &interfaces.LanguageCollection{Name: "Python", Slug: "python", Letter: "p"}
	loaded.Languages = append(loaded.Languages, python)
	service, dir := newTestService(t, loaded, false)

	result, err := service.Generate(context.Background(), interfaces.GenerateOptions{Languages: []string{"Python"}})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Written) != 1 || result.Written[0] != "python" {
		t.Fatalf("expected only python, got %v", result.Written)
	}
	if _, err := os.Stat(filepath.Join(dir, "archive", "g", "go", "README.md")); !os.IsNotExist(err) {
		t.Fatal("filtered language must not be written")
	}
}

func TestServiceGenerateCatalogError(t *testing.T) {
	dir := t.TempDir()
	service, err := NewService(Config{
		Catalog:  &stubCatalog{err: fmt.Errorf("boom")},
		RepoPath: dir,
	})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	if _, err := service.Generate(context.Background(), interfaces.GenerateOptions{}); err == nil {
		t.Fatal("expected catalog load error to propagate")
	}
}

func TestServiceRender(t *testing.T) {
	loaded := testCatalog()
	service, _ := newTestService(t, loaded, false)

	content, err := service.Render(context.Background(), "GO")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(string(content), "# Sample Programs in Go") {
		t.Fatalf("unexpected render output:\n%s", content)
	}
}

func TestServiceRenderUnknownLanguage(t *testing.T) {
	service, _ := newTestService(t, testCatalog(), false)
	if _, err := service.Render(context.Background(), "cobol"); err == nil {
		t.Fatal("expected unknown language error")
	}
}

func TestServiceConfigValidation(t *testing.T) {
	if _, err := NewService(Config{RepoPath: "x"}); err == nil {
		t.Fatal("expected error for missing catalog")
	}
	if _, err := NewService(Config{Catalog: &stubCatalog{}}); err == nil {
		t.Fatal("expected error for missing repo path")
	}
}
