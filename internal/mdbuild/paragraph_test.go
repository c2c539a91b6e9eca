package mdbuild

import "testing"

func TestParagraphInsertLink(t *testing.T) {
	p := NewParagraph("Here is a solution in Go :white_check_mark:")
	p.InsertLink("Go", "https://sampleprograms.io/languages/go")

	want := "Here is a solution in [Go](https://sampleprograms.io/languages/go) :white_check_mark:"
	if got := p.Markdown(); got != want {
		t.Fatalf("unexpected markdown\n got: %q\nwant: %q", got, want)
	}
}

func TestParagraphInsertLinkMissingText(t *testing.T) {
	p := NewParagraph("no anchors here")
	p.InsertLink("Go", "https://example.com")
	if got := p.Markdown(); got != "no anchors here" {
		t.Fatalf("paragraph mutated despite missing anchor: %q", got)
	}
}

func TestParagraphInsertLinkSkipsLinkedRuns(t *testing.T) {
	p := &Paragraph{}
	p.AddInline(Inline{Text: "Go", URL: "https://first.example"})
	p.Add(" and Go again")
	p.InsertLink("Go", "https://second.example")

	want := "[Go](https://first.example) and [Go](https://second.example) again"
	if got := p.Markdown(); got != want {
		t.Fatalf("unexpected markdown\n got: %q\nwant: %q", got, want)
	}
}

func TestParagraphReplace(t *testing.T) {
	p := NewParagraph("Hello World in Every Language")
	p.Replace("Every Language", "Go")
	if got := p.Markdown(); got != "Hello World in Go" {
		t.Fatalf("unexpected markdown: %q", got)
	}
}

func TestParagraphReplaceLink(t *testing.T) {
	p := &Paragraph{}
	p.AddInline(Inline{Text: "Hello World", URL: "https://old.example"})
	p.ReplaceLink("https://old.example", "https://new.example")
	if got := p.Markdown(); got != "[Hello World](https://new.example)" {
		t.Fatalf("unexpected markdown: %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses interior runs", "a  b\n\tc", "a b c"},
		{"keeps leading boundary", " leading", " leading"},
		{"keeps trailing boundary", "trailing\n", "trailing "},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeSpace(tc.in); got != tc.want {
				t.Fatalf("normalizeSpace(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
