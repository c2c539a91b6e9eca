package mdbuild

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDocumentRender(t *testing.T) {
	doc := New()
	doc.AddHeading("Sample Programs in Go", 1)
	doc.AddParagraph("Welcome to Sample Programs in Go!")
	doc.AddUnorderedList([]string{"first", "second"})
	doc.AddCodeBlock("folder:\n  extension:", "yml")
	doc.AddHorizontalRule()

	got := doc.Render()
	want := "# Sample Programs in Go\n\n" +
		"Welcome to Sample Programs in Go!\n\n" +
		"- first\n- second\n\n" +
		"```yml\nfolder:\n  extension:\n```\n\n" +
		"---\n"
	if got != want {
		t.Fatalf("unexpected render output\n got: %q\nwant: %q", got, want)
	}
}

func TestDocumentRenderEmpty(t *testing.T) {
	if got := New().Render(); got != "\n" {
		t.Fatalf("expected bare newline for empty document, got %q", got)
	}
}

func TestHeadingClampsLevel(t *testing.T) {
	if got := (Heading{Level: 0, Text: "top"}).Markdown(); got != "# top" {
		t.Fatalf("expected level clamp to 1, got %q", got)
	}
	if got := (Heading{Level: 9, Text: "deep"}).Markdown(); got != "###### deep" {
		t.Fatalf("expected level clamp to 6, got %q", got)
	}
}

func TestCodeBlockTrimsTrailingNewline(t *testing.T) {
	block := CodeBlock{Lang: "yml", Code: "image: golang\n"}
	if got := block.Markdown(); got != "```yml\nimage: golang\n```" {
		t.Fatalf("unexpected code block: %q", got)
	}
}

func TestDocumentDump(t *testing.T) {
	dir := t.TempDir()
	doc := New()
	doc.AddHeading("Title", 1)

	target := filepath.Join(dir, "archive", "g", "go")
	if err := doc.Dump("README", target); err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(target, "README.md"))
	if err != nil {
		t.Fatalf("read dumped file: %v", err)
	}
	if string(data) != "# Title\n" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}
