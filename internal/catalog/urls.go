package catalog

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

const (
	siteGroup   = "site"
	githubGroup = "github"

	routeLanguageDocs    = "language_docs"
	routeProjectDocs     = "project_docs"
	routeProjectArticle  = "project_article"
	routeProjectsIndex   = "projects_index"
	routeNewIssue        = "new_issue"
	routeArticleIssues   = "article_issues"
	issueTemplateDefault = "code-snippet-request.md"
)

// URLConfig carries the endpoints the catalog links against. Zero values
// fall back to the public sample programs deployment.
type URLConfig struct {
	SiteBaseURL     string
	GithubBaseURL   string
	SampleRepoPath  string
	WebsiteRepoPath string
	IssueTemplate   string
}

func (c URLConfig) withDefaults() URLConfig {
	if strings.TrimSpace(c.SiteBaseURL) == "" {
		c.SiteBaseURL = "https://sampleprograms.io"
	}
	if strings.TrimSpace(c.GithubBaseURL) == "" {
		c.GithubBaseURL = "https://github.com"
	}
	if strings.TrimSpace(c.SampleRepoPath) == "" {
		c.SampleRepoPath = "TheRenegadeCoder/sample-programs"
	}
	if strings.TrimSpace(c.WebsiteRepoPath) == "" {
		c.WebsiteRepoPath = "TheRenegadeCoder/sample-programs-website"
	}
	if strings.TrimSpace(c.IssueTemplate) == "" {
		c.IssueTemplate = issueTemplateDefault
	}
	return c
}

// URLSet builds every external URL the README generator links to. Routes are
// declared once on a go-urlkit manager so path templates stay in one place.
type URLSet struct {
	manager *urlkit.RouteManager
	cfg     URLConfig
}

// NewURLSet constructs the route manager for the configured endpoints.
func NewURLSet(cfg URLConfig) *URLSet {
	cfg = cfg.withDefaults()

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: cfg.SiteBaseURL,
				Paths: map[string]string{
					routeLanguageDocs:   "/languages/:slug",
					routeProjectDocs:    "/projects/:slug",
					routeProjectArticle: "/projects/:slug/:language",
					routeProjectsIndex:  "/projects",
				},
			},
			{
				Name:    githubGroup,
				BaseURL: cfg.GithubBaseURL,
				Paths: map[string]string{
					routeNewIssue:      "/" + cfg.SampleRepoPath + "/issues/new",
					routeArticleIssues: "/" + cfg.WebsiteRepoPath + "/issues",
				},
			},
		},
	})

	return &URLSet{manager: manager, cfg: cfg}
}

// LanguageDocs returns the documentation page URL for a language slug.
func (u *URLSet) LanguageDocs(languageSlug string) (string, error) {
	return u.build(siteGroup, routeLanguageDocs, map[string]any{"slug": languageSlug}, nil)
}

// ProjectRequirements returns the requirements page URL for a project.
func (u *URLSet) ProjectRequirements(projectSlug string) (string, error) {
	return u.build(siteGroup, routeProjectDocs, map[string]any{"slug": projectSlug}, nil)
}

// ProjectArticle returns the article URL documenting a project in a language.
func (u *URLSet) ProjectArticle(projectSlug, languageSlug string) (string, error) {
	return u.build(siteGroup, routeProjectArticle, map[string]any{
		"slug":     projectSlug,
		"language": languageSlug,
	}, nil)
}

// ProjectsIndex returns the approved projects listing URL.
func (u *URLSet) ProjectsIndex() (string, error) {
	return u.build(siteGroup, routeProjectsIndex, nil, nil)
}

// IssueTemplate returns a prefilled issue-creation URL requesting a project
// implementation in the given language.
func (u *URLSet) IssueTemplate(project interfaces.Project, languageName string) (string, error) {
	label := strings.Join(project.Words, " ")
	return u.build(githubGroup, routeNewIssue, nil, map[string]string{
		"assignees": "",
		"labels":    "enhancement," + label,
		"template":  u.cfg.IssueTemplate,
		"title":     fmt.Sprintf("Add %s in %s", project.Name, languageName),
	})
}

// ArticleIssueQuery returns an issue search URL scoped to a possible article
// request for the project/language pair.
func (u *URLSet) ArticleIssueQuery(project interfaces.Project, languageName string) (string, error) {
	return u.build(githubGroup, routeArticleIssues, nil, map[string]string{
		"q": fmt.Sprintf("is:issue is:open %s %s", project.Name, languageName),
	})
}

func (u *URLSet) build(group, route string, params map[string]any, query map[string]string) (string, error) {
	grp := u.manager.Group(group)
	if grp == nil {
		return "", fmt.Errorf("catalog: unknown route group %q", group)
	}
	builder := grp.Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	for key, value := range query {
		builder.WithQuery(key, value)
	}
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("catalog: build %s.%s url: %w", group, route, err)
	}
	return url, nil
}
