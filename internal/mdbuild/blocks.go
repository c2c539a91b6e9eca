package mdbuild

import (
	"fmt"
	"strings"
)

// Block is a renderable unit of a markdown document.
type Block interface {
	// Markdown returns the block rendered without surrounding blank lines.
	Markdown() string
}

// Heading renders an ATX heading. Levels outside 1..6 are clamped.
type Heading struct {
	Level int
	Text  string
}

// Markdown satisfies Block.
func (h Heading) Markdown() string {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + strings.TrimSpace(h.Text)
}

// UnorderedList renders one paragraph per bullet.
type UnorderedList struct {
	Items []*Paragraph
}

// NewUnorderedList builds a list from plain strings.
func NewUnorderedList(items []string) *UnorderedList {
	list := &UnorderedList{}
	for _, item := range items {
		list.Items = append(list.Items, NewParagraph(item))
	}
	return list
}

// Append adds a paragraph bullet to the list.
func (l *UnorderedList) Append(item *Paragraph) *UnorderedList {
	l.Items = append(l.Items, item)
	return l
}

// Markdown satisfies Block.
func (l *UnorderedList) Markdown() string {
	lines := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		lines = append(lines, "- "+item.Markdown())
	}
	return strings.Join(lines, "\n")
}

// CodeBlock renders a fenced code block with an optional language hint.
type CodeBlock struct {
	Lang string
	Code string
}

// Markdown satisfies Block.
func (c CodeBlock) Markdown() string {
	return fmt.Sprintf("```%s\n%s\n```", c.Lang, strings.TrimRight(c.Code, "\n"))
}

// HorizontalRule renders a thematic break.
type HorizontalRule struct{}

// Markdown satisfies Block.
func (HorizontalRule) Markdown() string { return "---" }
