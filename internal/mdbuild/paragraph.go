package mdbuild

import "strings"

// Inline is a run of paragraph text, optionally wrapped in a link.
type Inline struct {
	Text string
	URL  string
}

// Markdown renders the inline run.
func (i Inline) Markdown() string {
	if i.URL == "" {
		return i.Text
	}
	return "[" + i.Text + "](" + i.URL + ")"
}

// Paragraph is a sequence of inline runs. Mutators return the paragraph so
// composition reads as a chain, mirroring how builders assemble README lines.
type Paragraph struct {
	runs []Inline
}

// NewParagraph builds a paragraph from plain text runs.
func NewParagraph(texts ...string) *Paragraph {
	p := &Paragraph{}
	for _, text := range texts {
		p.Add(text)
	}
	return p
}

// Add appends a plain text run.
func (p *Paragraph) Add(text string) *Paragraph {
	p.runs = append(p.runs, Inline{Text: normalizeSpace(text)})
	return p
}

// AddInline appends a pre-built inline run.
func (p *Paragraph) AddInline(inline Inline) *Paragraph {
	inline.Text = normalizeSpace(inline.Text)
	p.runs = append(p.runs, inline)
	return p
}

// InsertLink converts the first occurrence of text inside an unlinked run
// into a markdown link. Missing text leaves the paragraph untouched.
func (p *Paragraph) InsertLink(text, url string) *Paragraph {
	for i, run := range p.runs {
		if run.URL != "" {
			continue
		}
		idx := strings.Index(run.Text, text)
		if idx < 0 {
			continue
		}

		var replaced []Inline
		if before := run.Text[:idx]; before != "" {
			replaced = append(replaced, Inline{Text: before})
		}
		replaced = append(replaced, Inline{Text: text, URL: url})
		if after := run.Text[idx+len(text):]; after != "" {
			replaced = append(replaced, Inline{Text: after})
		}

		runs := make([]Inline, 0, len(p.runs)+len(replaced)-1)
		runs = append(runs, p.runs[:i]...)
		runs = append(runs, replaced...)
		runs = append(runs, p.runs[i+1:]...)
		p.runs = runs
		return p
	}
	return p
}

// Replace swaps literal text in every run, linked or not.
func (p *Paragraph) Replace(old, new string) *Paragraph {
	for i := range p.runs {
		p.runs[i].Text = strings.ReplaceAll(p.runs[i].Text, old, new)
	}
	return p
}

// ReplaceLink swaps the first link URL matching old with new.
func (p *Paragraph) ReplaceLink(old, new string) *Paragraph {
	for i := range p.runs {
		if p.runs[i].URL == old {
			p.runs[i].URL = new
			return p
		}
	}
	return p
}

// Markdown satisfies Block.
func (p *Paragraph) Markdown() string {
	var sb strings.Builder
	for _, run := range p.runs {
		sb.WriteString(run.Markdown())
	}
	return sb.String()
}

// normalizeSpace collapses interior whitespace so multi-line source literals
// render as a single tidy line.
func normalizeSpace(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	joined := strings.Join(fields, " ")
	// Preserve a single leading/trailing space so adjacent runs keep their
	// word boundaries.
	if strings.HasPrefix(text, " ") || strings.HasPrefix(text, "\n") || strings.HasPrefix(text, "\t") {
		joined = " " + joined
	}
	if strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\t") {
		joined += " "
	}
	return joined
}
