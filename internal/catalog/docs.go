package catalog

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// DocPage is a parsed documentation article from the website source tree.
type DocPage struct {
	Title string
	Slug  string
	// Featured articles can pin a custom requirements URL in frontmatter.
	RequirementsURL string
	Body            []byte
}

type docFrontMatter struct {
	Title           string `yaml:"title"`
	Slug            string `yaml:"slug"`
	RequirementsURL string `yaml:"requirements_url"`
}

// DocSet answers documentation lookups against a website source checkout.
// Articles live under languages/<slug> and projects/<project>/<language>,
// either as <dir>/index.md or as a flat <slug>.md file.
type DocSet struct {
	fsys fs.FS
}

// NewDocSet wraps the documentation tree. A nil filesystem yields a DocSet
// that reports no documentation at all.
func NewDocSet(fsys fs.FS) *DocSet {
	return &DocSet{fsys: fsys}
}

// HasLanguageDoc reports whether the language has a documentation page.
func (d *DocSet) HasLanguageDoc(languageSlug string) bool {
	_, ok := d.load(languageDocCandidates(languageSlug))
	return ok
}

// HasProjectDoc reports whether an article exists for the project/language pair.
func (d *DocSet) HasProjectDoc(projectSlug, languageSlug string) bool {
	_, ok := d.load(projectDocCandidates(projectSlug, languageSlug))
	return ok
}

// LanguageDoc loads and parses the language documentation page.
func (d *DocSet) LanguageDoc(languageSlug string) (*DocPage, error) {
	page, ok := d.load(languageDocCandidates(languageSlug))
	if !ok {
		return nil, fmt.Errorf("catalog: no documentation for language %q", languageSlug)
	}
	return page, nil
}

// ProjectDoc loads and parses the article for the project/language pair.
func (d *DocSet) ProjectDoc(projectSlug, languageSlug string) (*DocPage, error) {
	page, ok := d.load(projectDocCandidates(projectSlug, languageSlug))
	if !ok {
		return nil, fmt.Errorf("catalog: no article for %s in %s", projectSlug, languageSlug)
	}
	return page, nil
}

func (d *DocSet) load(candidates []string) (*DocPage, bool) {
	if d == nil || d.fsys == nil {
		return nil, false
	}
	for _, candidate := range candidates {
		data, err := fs.ReadFile(d.fsys, candidate)
		if err != nil {
			continue
		}
		page, err := parseDocPage(data)
		if err != nil {
			continue
		}
		return page, true
	}
	return nil, false
}

func parseDocPage(source []byte) (*DocPage, error) {
	var meta docFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse doc frontmatter: %w", err)
	}
	return &DocPage{
		Title:           strings.TrimSpace(meta.Title),
		Slug:            strings.TrimSpace(meta.Slug),
		RequirementsURL: strings.TrimSpace(meta.RequirementsURL),
		Body:            body,
	}, nil
}

func languageDocCandidates(languageSlug string) []string {
	slug := strings.ToLower(strings.TrimSpace(languageSlug))
	return []string{
		path.Join("languages", slug, "index.md"),
		path.Join("languages", slug+".md"),
	}
}

func projectDocCandidates(projectSlug, languageSlug string) []string {
	project := strings.ToLower(strings.TrimSpace(projectSlug))
	language := strings.ToLower(strings.TrimSpace(languageSlug))
	return []string{
		path.Join("projects", project, language, "index.md"),
		path.Join("projects", project, language+".md"),
	}
}
