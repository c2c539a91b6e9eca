package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

func TestGoldmarkParserParse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Sample Programs in Go\n\nSee [docs](https://sampleprograms.io)."))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<h1 id=\"sample-programs-in-go\">Sample Programs in Go</h1>") {
		t.Fatalf("missing heading with auto id:\n%s", out)
	}
	if !strings.Contains(out, `<a href="https://sampleprograms.io">docs</a>`) {
		t.Fatalf("missing link:\n%s", out)
	}
}

func TestGoldmarkParserGFMDefaults(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("~~old~~ and https://example.com"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<del>old</del>") {
		t.Fatalf("strikethrough not rendered:\n%s", out)
	}
	if !strings.Contains(out, `<a href="https://example.com">`) {
		t.Fatalf("linkify not applied:\n%s", out)
	}
}

func TestGoldmarkParserSafeMode(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	raw := []byte("<em>inline</em>")

	unsafe, err := parser.Parse(raw)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !strings.Contains(string(unsafe), "<em>inline</em>") {
		t.Fatalf("expected raw html to pass through by default:\n%s", unsafe)
	}

	safe, err := parser.ParseWithOptions(raw, interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions returned error: %v", err)
	}
	if strings.Contains(string(safe), "<em>inline</em>") {
		t.Fatalf("safe mode must escape raw html:\n%s", safe)
	}
}

func TestGoldmarkParserHardWraps(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})
	raw := []byte("line one\nline two")

	html, err := parser.ParseWithOptions(raw, interfaces.ParseOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("ParseWithOptions returned error: %v", err)
	}
	if !strings.Contains(string(html), "<br") {
		t.Fatalf("hard wraps not applied:\n%s", html)
	}
}

func TestCollectExtensions(t *testing.T) {
	if got := collectExtensions(nil); len(got) != 3 {
		t.Fatalf("expected default extension set of 3, got %d", len(got))
	}
	if got := collectExtensions([]string{"gfm", "GFM", "unknown", " tasklist "}); len(got) != 2 {
		t.Fatalf("expected dedup and filtering to yield 2, got %d", len(got))
	}
}
