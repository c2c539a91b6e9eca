// Package readmegen generates language README pages for a sample programs
// checkout: it walks the archive tree, cross-references the approved project
// registry, and writes one README per language with completion status and
// testing documentation.
package readmegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-readmegen/internal/catalog"
	readmecmd "github.com/goliatone/go-readmegen/internal/commands/readme"
	"github.com/goliatone/go-readmegen/internal/index"
	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/internal/logging/gologger"
	"github.com/goliatone/go-readmegen/internal/markdown"
	"github.com/goliatone/go-readmegen/internal/readme"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// CatalogService exports the catalog loader contract for consumers of the
// readmegen package.
type CatalogService = interfaces.CatalogService

// ReadmeService exports the README build contract.
type ReadmeService = interfaces.ReadmeService

// MarkdownParser exports the preview parser contract.
type MarkdownParser = interfaces.MarkdownParser

// GenerateOptions exports the build run options.
type GenerateOptions = interfaces.GenerateOptions

// BuildResult exports the build run outcome.
type BuildResult = interfaces.BuildResult

// IndexStore exports the embedded catalog database.
type IndexStore = index.Store

// IndexStats exports the completion summary computed from the index.
type IndexStats = index.Stats

// GenerateCommand exports the README build message.
type GenerateCommand = readmecmd.GenerateCommand

// PreviewCommand exports the HTML preview message.
type PreviewCommand = readmecmd.PreviewCommand

// IndexCommand exports the catalog snapshot message.
type IndexCommand = readmecmd.IndexCommand

// Module represents the top level readmegen runtime façade.
type Module struct {
	cfg     Config
	logs    interfaces.LoggerProvider
	catalog *catalog.Service
	readme  *readme.Service
	parser  *markdown.GoldmarkParser
}

// New constructs a readmegen module from the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, err
	}

	urls := catalog.NewURLSet(catalog.URLConfig{
		SiteBaseURL:     cfg.URLs.SiteBaseURL,
		GithubBaseURL:   cfg.URLs.GithubBaseURL,
		SampleRepoPath:  cfg.URLs.SampleRepoPath,
		WebsiteRepoPath: cfg.URLs.WebsiteRepoPath,
		IssueTemplate:   cfg.URLs.IssueTemplate,
	})

	catalogService, err := newCatalogService(cfg, urls, provider)
	if err != nil {
		return nil, err
	}

	readmeService, err := readme.NewService(readme.Config{
		Catalog:         catalogService,
		URLs:            urls,
		RepoPath:        cfg.RepoPath,
		ManifestEnabled: cfg.Features.Manifest,
		Logger:          logging.ReadmeLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: cfg.Preview.Extensions,
		HardWraps:  cfg.Preview.HardWraps,
		SafeMode:   cfg.Preview.SafeMode,
	})

	return &Module{
		cfg:     cfg,
		logs:    provider,
		catalog: catalogService,
		readme:  readmeService,
		parser:  parser,
	}, nil
}

// Catalog exposes the catalog loader.
func (m *Module) Catalog() CatalogService { return m.catalog }

// Readme exposes the README build service.
func (m *Module) Readme() ReadmeService { return m.readme }

// Parser exposes the HTML preview parser.
func (m *Module) Parser() MarkdownParser { return m.parser }

// Loggers exposes the shared logger provider so hosts reuse the same root.
func (m *Module) Loggers() interfaces.LoggerProvider { return m.logs }

// OpenIndex opens the embedded catalog database configured for this module.
func (m *Module) OpenIndex() (*IndexStore, error) {
	cacheService, serializer, err := m.indexCache()
	if err != nil {
		return nil, err
	}
	return index.Open(index.Config{
		Driver:        m.cfg.Index.Driver,
		DSN:           m.cfg.Index.DSN,
		CacheService:  cacheService,
		KeySerializer: serializer,
		Logger:        logging.IndexLogger(m.logs),
	})
}

// indexCache builds the repository caching collaborators when the cache
// feature is enabled. Index.CacheTTL overrides the default entry lifetime.
func (m *Module) indexCache() (repocache.CacheService, repocache.KeySerializer, error) {
	if !m.cfg.Features.Cache {
		return nil, nil, nil
	}
	cacheCfg := repocache.DefaultConfig()
	if m.cfg.Index.CacheTTL > 0 {
		cacheCfg.TTL = m.cfg.Index.CacheTTL
	}
	service, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("index cache: %w", err)
	}
	return service, repocache.NewDefaultKeySerializer(), nil
}

// GenerateHandler builds the command handler for README generation runs.
func (m *Module) GenerateHandler() *readmecmd.GenerateHandler {
	factory := func(repoPath string) (interfaces.ReadmeService, error) {
		if samePath(repoPath, m.cfg.RepoPath) {
			return m.readme, nil
		}
		return m.readmeServiceFor(repoPath)
	}
	return readmecmd.NewGenerateHandler(factory, logging.CommandsLogger(m.logs))
}

// PreviewHandler builds the command handler for HTML previews.
func (m *Module) PreviewHandler() *readmecmd.PreviewHandler {
	factory := func(repoPath string) (interfaces.ReadmeService, error) {
		if samePath(repoPath, m.cfg.RepoPath) {
			return m.readme, nil
		}
		return m.readmeServiceFor(repoPath)
	}
	return readmecmd.NewPreviewHandler(factory, m.parser, logging.CommandsLogger(m.logs))
}

// IndexHandler builds the command handler for catalog snapshots.
func (m *Module) IndexHandler() *readmecmd.IndexHandler {
	catalogs := func(repoPath string) (interfaces.CatalogService, error) {
		if samePath(repoPath, m.cfg.RepoPath) {
			return m.catalog, nil
		}
		cfg := m.cfg
		cfg.RepoPath = repoPath
		urls := m.catalog.URLs()
		return newCatalogService(cfg, urls, m.logs)
	}
	stores := func(driver, dsn string) (*index.Store, error) {
		cacheService, serializer, err := m.indexCache()
		if err != nil {
			return nil, err
		}
		return index.Open(index.Config{
			Driver:        driver,
			DSN:           dsn,
			CacheService:  cacheService,
			KeySerializer: serializer,
			Logger:        logging.IndexLogger(m.logs),
		})
	}
	return readmecmd.NewIndexHandler(catalogs, stores, logging.CommandsLogger(m.logs))
}

func (m *Module) readmeServiceFor(repoPath string) (*readme.Service, error) {
	cfg := m.cfg
	cfg.RepoPath = repoPath
	catalogService, err := newCatalogService(cfg, m.catalog.URLs(), m.logs)
	if err != nil {
		return nil, err
	}
	return readme.NewService(readme.Config{
		Catalog:         catalogService,
		URLs:            m.catalog.URLs(),
		RepoPath:        repoPath,
		ManifestEnabled: cfg.Features.Manifest,
		Logger:          logging.ReadmeLogger(m.logs),
	})
}

func newCatalogService(cfg Config, urls *catalog.URLSet, logs interfaces.LoggerProvider) (*catalog.Service, error) {
	catalogConfig := catalog.Config{
		RepoFS:       os.DirFS(cfg.RepoPath),
		ProjectsPath: cfg.Catalog.ProjectsPath,
		URLs:         urls,
		Logger:       logging.CatalogLogger(logs),
	}
	if cfg.Features.Docs && strings.TrimSpace(cfg.Catalog.DocsDir) != "" {
		catalogConfig.DocsFS = os.DirFS(cfg.Catalog.DocsDir)
	}
	return catalog.NewService(catalogConfig)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
