// Package catalog loads the sample programs corpus: the approved project
// registry, the archive tree of per-language program files, their testing
// manifests, and documentation lookups against the website source.
package catalog

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-readmegen/internal/identity"
	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// ArchiveDirName is the corpus shard root inside a sample programs checkout.
const ArchiveDirName = "archive"

// DefaultProjectsPath locates the registry inside the checkout.
const DefaultProjectsPath = "projects.json"

// Config assembles a catalog Service.
type Config struct {
	// RepoFS is rooted at the sample programs checkout.
	RepoFS fs.FS
	// DocsFS is an optional website source checkout used for documentation
	// detection. Nil disables docs links.
	DocsFS fs.FS
	// ProjectsPath overrides the registry location inside RepoFS.
	ProjectsPath string
	// URLs provides external link construction. Nil uses defaults.
	URLs *URLSet
	// Logger receives structured progress entries. Nil logs nothing.
	Logger interfaces.Logger
}

// Service walks the archive and assembles language collections.
type Service struct {
	fsys         fs.FS
	docs         *DocSet
	urls         *URLSet
	projectsPath string
	logger       interfaces.Logger
}

var _ interfaces.CatalogService = (*Service)(nil)

// NewService validates the configuration and returns a catalog loader.
func NewService(cfg Config) (*Service, error) {
	if cfg.RepoFS == nil {
		return nil, fmt.Errorf("catalog: repository filesystem is required")
	}
	urls := cfg.URLs
	if urls == nil {
		urls = NewURLSet(URLConfig{})
	}
	projectsPath := strings.TrimSpace(cfg.ProjectsPath)
	if projectsPath == "" {
		projectsPath = DefaultProjectsPath
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		fsys:         cfg.RepoFS,
		docs:         NewDocSet(cfg.DocsFS),
		urls:         urls,
		projectsPath: projectsPath,
		logger:       logger,
	}, nil
}

// URLs exposes the link builder shared with the README composer.
func (s *Service) URLs() *URLSet {
	return s.urls
}

// Docs exposes the documentation lookups shared with the README composer.
func (s *Service) Docs() *DocSet {
	return s.docs
}

// Load satisfies interfaces.CatalogService.
func (s *Service) Load(ctx context.Context) (*interfaces.Catalog, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(s.fsys, s.projectsPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: read projects registry %s: %w", s.projectsPath, err)
	}
	projects, err := ParseProjects(data)
	if err != nil {
		return nil, err
	}
	lookup := newProjectLookup(projects)

	letters, err := fs.ReadDir(s.fsys, ArchiveDirName)
	if err != nil {
		return nil, fmt.Errorf("catalog: read archive: %w", err)
	}

	var languages []*interfaces.LanguageCollection
	for _, letter := range letters {
		if !letter.IsDir() || strings.HasPrefix(letter.Name(), ".") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		letterPath := path.Join(ArchiveDirName, letter.Name())
		entries, err := fs.ReadDir(s.fsys, letterPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: read archive shard %s: %w", letterPath, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			language, err := s.loadLanguage(ctx, letter.Name(), entry.Name(), lookup)
			if err != nil {
				return nil, err
			}
			languages = append(languages, language)
		}
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Slug < languages[j].Slug
	})

	s.logger.Info("catalog.load.completed",
		"languages", len(languages),
		"projects", len(projects),
	)

	return &interfaces.Catalog{
		Languages: languages,
		Projects:  projects,
	}, nil
}

func (s *Service) loadLanguage(ctx context.Context, letter, slug string, lookup *projectLookup) (*interfaces.LanguageCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := path.Join(ArchiveDirName, letter, slug)
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read language %s: %w", dir, err)
	}

	language := &interfaces.LanguageCollection{
		ID:     identity.LanguageUUID(slug),
		Name:   DisplayName(slug),
		Slug:   slug,
		Letter: letter,
	}

	logger := logging.WithBuildContext(s.logger, slug, "", "load")

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		filePath := path.Join(dir, name)

		switch name {
		case TestInfoFileName:
			data, err := fs.ReadFile(s.fsys, filePath)
			if err != nil {
				return nil, fmt.Errorf("catalog: read %s: %w", filePath, err)
			}
			info, err := ParseTestInfo(data)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s: %w", filePath, err)
			}
			language.TestInfo = info
			continue
		case UntestableFileName:
			data, err := fs.ReadFile(s.fsys, filePath)
			if err != nil {
				return nil, fmt.Errorf("catalog: read %s: %w", filePath, err)
			}
			entries, err := ParseUntestable(data)
			if err != nil {
				return nil, fmt.Errorf("catalog: %s: %w", filePath, err)
			}
			language.Untestable = entries
			continue
		case "README.md":
			// Generated output, never a sample program.
			continue
		}

		program, err := s.loadProgram(slug, filePath, name, lookup)
		if err != nil {
			return nil, err
		}
		if program == nil {
			logger.Warn("catalog.load.unmatched_file", "file", name)
			continue
		}
		language.Programs = append(language.Programs, *program)
	}

	sort.Slice(language.Programs, func(i, j int) bool {
		return language.Programs[i].FileName < language.Programs[j].FileName
	})

	language.HasDocs = s.docs.HasLanguageDoc(slug)
	if language.HasDocs {
		url, err := s.urls.LanguageDocs(slug)
		if err != nil {
			return nil, err
		}
		language.DocsURL = url
	}

	return language, nil
}

func (s *Service) loadProgram(languageSlug, filePath, fileName string, lookup *projectLookup) (*interfaces.SampleProgram, error) {
	stem, extension := splitExtension(fileName)
	if stem == "" {
		return nil, nil
	}

	project, ok := lookup.match(stem)
	if !ok {
		return nil, nil
	}

	data, err := fs.ReadFile(s.fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("catalog: read program %s: %w", filePath, err)
	}
	sum := sha256.Sum256(data)

	return &interfaces.SampleProgram{
		ID:           identity.ProgramUUID(languageSlug, project.Slug),
		FileName:     fileName,
		Stem:         stem,
		Extension:    extension,
		Project:      project,
		LanguageSlug: languageSlug,
		Checksum:     sum[:],
		HasDocs:      s.docs.HasProjectDoc(project.Slug, languageSlug),
	}, nil
}

// projectLookup resolves program file stems to registry entries. Compact
// keys cover languages whose naming convention strips word separators.
type projectLookup struct {
	bySlug    map[string]interfaces.Project
	byCompact map[string]interfaces.Project
}

func newProjectLookup(projects []interfaces.Project) *projectLookup {
	lookup := &projectLookup{
		bySlug:    make(map[string]interfaces.Project, len(projects)),
		byCompact: make(map[string]interfaces.Project, len(projects)),
	}
	for _, project := range projects {
		lookup.bySlug[project.Slug] = project
		lookup.byCompact[strings.ReplaceAll(project.Slug, "-", "")] = project
	}
	return lookup
}

func (l *projectLookup) match(stem string) (interfaces.Project, bool) {
	normalized := NormalizeStem(stem)
	if project, ok := l.bySlug[normalized]; ok {
		return project, true
	}
	compact := strings.ReplaceAll(normalized, "-", "")
	if project, ok := l.byCompact[compact]; ok {
		return project, true
	}
	return interfaces.Project{}, false
}

func splitExtension(fileName string) (string, string) {
	idx := strings.LastIndex(fileName, ".")
	if idx <= 0 {
		return fileName, ""
	}
	return fileName[:idx], fileName[idx:]
}
