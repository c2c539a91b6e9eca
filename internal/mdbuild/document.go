// Package mdbuild assembles markdown documents programmatically. Blocks are
// appended in order and rendered with exactly one blank line between them,
// which keeps generated files stable across runs and friendly to diffs.
package mdbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document accumulates markdown blocks for a single output file.
type Document struct {
	blocks []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// AddHeading appends a heading block and returns it.
func (d *Document) AddHeading(text string, level int) Heading {
	heading := Heading{Level: level, Text: text}
	d.blocks = append(d.blocks, heading)
	return heading
}

// AddParagraph appends a paragraph built from text and returns it so callers
// can chain link insertion.
func (d *Document) AddParagraph(text string) *Paragraph {
	paragraph := NewParagraph(text)
	d.blocks = append(d.blocks, paragraph)
	return paragraph
}

// AddBlock appends an arbitrary block.
func (d *Document) AddBlock(block Block) *Document {
	if block != nil {
		d.blocks = append(d.blocks, block)
	}
	return d
}

// AddUnorderedList appends a bullet list built from plain strings.
func (d *Document) AddUnorderedList(items []string) *Document {
	d.blocks = append(d.blocks, NewUnorderedList(items))
	return d
}

// AddCodeBlock appends a fenced code block.
func (d *Document) AddCodeBlock(code, lang string) *Document {
	d.blocks = append(d.blocks, CodeBlock{Lang: lang, Code: code})
	return d
}

// AddHorizontalRule appends a thematic break.
func (d *Document) AddHorizontalRule() *Document {
	d.blocks = append(d.blocks, HorizontalRule{})
	return d
}

// Render produces the full document with a trailing newline.
func (d *Document) Render() string {
	parts := make([]string, 0, len(d.blocks))
	for _, block := range d.blocks {
		parts = append(parts, block.Markdown())
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Dump writes the rendered document to <dir>/<name>.md, creating the
// directory tree when needed.
func (d *Document) Dump(name, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mdbuild: create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, []byte(d.Render()), 0o644); err != nil {
		return fmt.Errorf("mdbuild: write %s: %w", path, err)
	}
	return nil
}
