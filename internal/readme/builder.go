// Package readme composes and writes the per-language README documents for
// a sample programs checkout.
package readme

import (
	"fmt"

	"github.com/goliatone/go-readmegen/internal/catalog"
	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/internal/mdbuild"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

const (
	toolRepoURL = "https://github.com/goliatone/go-readmegen"
	glotterURL  = "https://github.com/rzuckerm/glotter2"
)

// progressEmojis index completion ratio into a mood, worst to best.
var progressEmojis = []string{":disappointed:", ":thinking:", ":relaxed:", ":smile:", ":partying_face:"}

const testInfoSkeleton = "folder:\n  extension:\n  naming:\n\ncontainer:\n  image:\n  tag:\n  cmd:"

// Builder renders one README document per language collection.
type Builder struct {
	catalog *interfaces.Catalog
	urls    *catalog.URLSet
	logger  interfaces.Logger
}

// NewBuilder binds a builder to a loaded catalog.
func NewBuilder(loaded *interfaces.Catalog, urls *catalog.URLSet, logger interfaces.Logger) *Builder {
	if urls == nil {
		urls = catalog.NewURLSet(catalog.URLConfig{})
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Builder{catalog: loaded, urls: urls, logger: logger}
}

// Build assembles the README document for a language.
func (b *Builder) Build(language *interfaces.LanguageCollection) (*mdbuild.Document, error) {
	if language == nil {
		return nil, fmt.Errorf("readme: language collection is nil")
	}

	doc := mdbuild.New()

	doc.AddHeading("Sample Programs in "+language.Name, 1)
	doc.AddBlock(b.introParagraph(language))

	completed := len(language.Programs)
	total := b.catalog.TotalApprovedProjects()

	doc.AddHeading(programListHeader(completed, total), 2)
	doc.AddParagraph(fmt.Sprintf(
		"In this section, we feature a list of completed and missing programs in %s. "+
			"See above for the current amount of completed programs in %s. "+
			"If you see a program that is missing and would like to add it, "+
			"please submit an issue, so we can assign it to you.",
		language.Name, language.Name,
	))

	doc.AddHeading("Completed Programs", 3)
	projectsIndexURL, err := b.urls.ProjectsIndex()
	if err != nil {
		return nil, err
	}
	doc.AddParagraph(fmt.Sprintf(
		"Below, you'll find a list of completed code snippets in %s. "+
			"Code snippets preceded by :warning: link to a GitHub issue query "+
			"featuring a possible article request issue. If an article request "+
			"issue doesn't exist, we encourage you to create one. Meanwhile, code "+
			"snippets preceded by :white_check_mark: link to an existing article "+
			"which provides further documentation. To see the list of approved "+
			"projects, check out the official Sample Programs project list.",
		language.Name,
	)).InsertLink("Sample Programs project list", projectsIndexURL)

	programList, err := b.programList(language)
	if err != nil {
		return nil, err
	}
	doc.AddBlock(programList)

	missing := b.catalog.MissingProjects(language)
	if len(missing) > 0 {
		doc.AddHeading("Missing Programs", 3)
		doc.AddParagraph(fmt.Sprintf(
			"The following list contains all of the approved programs that are "+
				"not currently implemented in %s. Click on the name of the project "+
				"to easily open an issue in GitHub. Alternatively, click requirements "+
				"to check out the description of the project.",
			language.Name,
		))
		missingList, err := b.missingProgramList(language, missing)
		if err != nil {
			return nil, err
		}
		doc.AddBlock(missingList)
	}

	if err := b.testingSection(doc, language); err != nil {
		return nil, err
	}

	doc.AddHorizontalRule()
	doc.AddBlock(creditParagraph())

	return doc, nil
}

func (b *Builder) introParagraph(language *interfaces.LanguageCollection) *mdbuild.Paragraph {
	paragraph := mdbuild.NewParagraph("Welcome to Sample Programs in " + language.Name + "! ")
	if language.HasDocs {
		paragraph.Add(fmt.Sprintf("To find documentation related to the %s code in this repo, look ", language.Name))
		paragraph.AddInline(mdbuild.Inline{Text: "here.", URL: language.DocsURL})
	}
	return paragraph
}

// programList renders the completed programs, flipping entries without an
// article to a warning marker that links the existing issue query instead.
func (b *Builder) programList(language *interfaces.LanguageCollection) (*mdbuild.UnorderedList, error) {
	list := &mdbuild.UnorderedList{}
	for _, program := range language.Programs {
		name := program.Project.Name

		articleURL, err := b.urls.ProjectArticle(program.Project.Slug, language.Slug)
		if err != nil {
			return nil, err
		}
		requirementsURL, err := b.urls.ProjectRequirements(program.Project.Slug)
		if err != nil {
			return nil, err
		}

		line := mdbuild.NewParagraph(":white_check_mark: " + name + " [Requirements]").
			InsertLink(name, articleURL).
			InsertLink("Requirements", requirementsURL)

		if !program.HasDocs {
			issueQueryURL, err := b.urls.ArticleIssueQuery(program.Project, language.Name)
			if err != nil {
				return nil, err
			}
			line.Replace(":white_check_mark:", ":warning:").
				ReplaceLink(articleURL, issueQueryURL)
		}

		list.Append(line)
	}
	return list, nil
}

func (b *Builder) missingProgramList(language *interfaces.LanguageCollection, missing []interfaces.Project) (*mdbuild.UnorderedList, error) {
	list := &mdbuild.UnorderedList{}
	for _, project := range missing {
		issueURL, err := b.urls.IssueTemplate(project, language.Name)
		if err != nil {
			return nil, err
		}
		requirementsURL, err := b.urls.ProjectRequirements(project.Slug)
		if err != nil {
			return nil, err
		}
		list.Append(mdbuild.NewParagraph(":x: " + project.Name + " [Requirements]").
			InsertLink(project.Name, issueURL).
			InsertLink("Requirements", requirementsURL))
	}
	return list, nil
}

func (b *Builder) testingSection(doc *mdbuild.Document, language *interfaces.LanguageCollection) error {
	doc.AddHeading("Testing", 2)

	switch {
	case language.TestInfo != nil:
		info := language.TestInfo
		doc.AddParagraph(fmt.Sprintf(
			"The following list shares details about how we name all Sample Programs in %s:",
			language.Name,
		))
		doc.AddUnorderedList([]string{
			"Extension: " + info.Folder.Extension,
			"Naming Convention: " + string(info.Folder.Naming),
		})

		doc.AddParagraph(`For example, the "Hello World" sample would be named this:`)
		doc.AddUnorderedList([]string{
			catalog.NamingExamples[info.Folder.Naming] + info.Folder.Extension,
		})

		doc.AddParagraph(fmt.Sprintf(
			"The following list shares details about what we're using to test all Sample Programs in %s:",
			language.Name,
		))
		doc.AddUnorderedList([]string{
			"Docker Image: " + info.Container.Image,
			"Docker Tag: " + info.Container.Tag,
		})
	case len(language.Untestable) > 0:
		doc.AddParagraph(fmt.Sprintf("%s cannot be tested for the following reason:", language.Name))
		doc.AddUnorderedList([]string{language.Untestable[0].Reason})
	default:
		doc.AddParagraph(
			"This language currently does not feature testing. If you'd like to " +
				"help in the efforts to test all of the code in this repo, consider " +
				"creating a testinfo.yml file with the following information:",
		)
		doc.AddCodeBlock(testInfoSkeleton, "yml")
	}

	if len(language.Untestable) == 0 {
		doc.AddParagraph("See the Glotter2 project for more information on how to create a testinfo file.").
			InsertLink("Glotter2 project", glotterURL)
	}

	return nil
}

func programListHeader(completed, total int) string {
	index := 0
	if total > 0 {
		index = completed * 4 / total
	}
	if index < 0 {
		index = 0
	}
	if index >= len(progressEmojis) {
		index = len(progressEmojis) - 1
	}
	return fmt.Sprintf("Sample Programs List - %d/%d %s", completed, total, progressEmojis[index])
}

func creditParagraph() *mdbuild.Paragraph {
	return mdbuild.NewParagraph(
		"This page was generated automatically by the Sample Programs READMEs tool. " +
			"Find out how to support this project on GitHub.",
	).InsertLink("this project", toolRepoURL)
}
