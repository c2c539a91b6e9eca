package readme

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-readmegen/internal/catalog"
	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// OutputName is the file stem written into every language directory.
const OutputName = "README"

// Config assembles a README Service.
type Config struct {
	// Catalog loads the corpus on every run.
	Catalog interfaces.CatalogService
	// URLs provides link construction for the builder.
	URLs *catalog.URLSet
	// RepoPath is the writable sample programs checkout the READMEs land in.
	RepoPath string
	// ManifestEnabled turns on incremental builds via the build manifest.
	ManifestEnabled bool
	// Logger receives structured progress entries. Nil logs nothing.
	Logger interfaces.Logger
	// Now overrides the clock, primarily for tests.
	Now func() time.Time
}

// Service renders and writes README documents for every language.
type Service struct {
	catalog         interfaces.CatalogService
	urls            *catalog.URLSet
	repoPath        string
	manifestEnabled bool
	logger          interfaces.Logger
	now             func() time.Time
}

var _ interfaces.ReadmeService = (*Service)(nil)

// NewService validates the configuration and returns a README service.
func NewService(cfg Config) (*Service, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("readme: catalog service is required")
	}
	if strings.TrimSpace(cfg.RepoPath) == "" {
		return nil, fmt.Errorf("readme: repository path is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:         cfg.Catalog,
		urls:            cfg.URLs,
		repoPath:        filepath.Clean(cfg.RepoPath),
		manifestEnabled: cfg.ManifestEnabled,
		logger:          logger,
		now:             now,
	}, nil
}

// Generate satisfies interfaces.ReadmeService. Per-language build failures
// are collected in the result instead of aborting the whole run.
func (s *Service) Generate(ctx context.Context, opts interfaces.GenerateOptions) (*interfaces.BuildResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	loaded, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	manifest, err := s.loadManifest()
	if err != nil {
		return nil, err
	}

	filter := sliceToSet(opts.Languages)
	builder := NewBuilder(loaded, s.urls, s.logger)
	result := &interfaces.BuildResult{}

	for _, language := range loaded.Languages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(filter) > 0 {
			if _, ok := filter[language.Slug]; !ok {
				continue
			}
		}

		logger := logging.WithBuildContext(s.logger, language.Slug, "", "generate")

		fingerprint := languageFingerprint(language, loaded.TotalApprovedProjects())
		outputDir := s.languageDir(language)
		outputPath := filepath.Join(outputDir, OutputName+".md")

		if !opts.Force && s.manifestEnabled {
			if entry, ok := manifest.Languages[language.Slug]; ok && entry.Fingerprint == fingerprint {
				if _, err := os.Stat(outputPath); err == nil {
					logger.Debug("readme.generate.unchanged")
					result.Skipped = append(result.Skipped, language.Slug)
					continue
				}
			}
		}

		doc, err := builder.Build(language)
		if err != nil {
			logger.Error("readme.generate.build_failed", "error", err)
			result.Errors = append(result.Errors, interfaces.BuildError{Language: language.Slug, Err: err})
			continue
		}

		content := []byte(doc.Render())

		if !opts.DryRun {
			if err := doc.Dump(OutputName, outputDir); err != nil {
				logger.Error("readme.generate.write_failed", "error", err)
				result.Errors = append(result.Errors, interfaces.BuildError{Language: language.Slug, Err: err})
				continue
			}
		}

		manifest.Languages[language.Slug] = manifestLanguage{
			LanguageID:  language.ID.String(),
			Slug:        language.Slug,
			Output:      filepath.ToSlash(filepath.Join(catalog.ArchiveDirName, language.Letter, language.Slug, OutputName+".md")),
			Fingerprint: fingerprint,
			Checksum:    contentChecksum(content),
			RenderedAt:  s.now().UTC(),
		}
		result.Written = append(result.Written, language.Slug)
		logger.Info("readme.generate.written", "dry_run", opts.DryRun)
	}

	if s.manifestEnabled && !opts.DryRun {
		manifest.GeneratedAt = s.now().UTC()
		if err := s.saveManifest(manifest); err != nil {
			return nil, err
		}
	}

	s.logger.Info("readme.generate.completed",
		"written_count", len(result.Written),
		"skipped_count", len(result.Skipped),
		"error_count", len(result.Errors),
		"dry_run", opts.DryRun,
	)

	return result, nil
}

// Render satisfies interfaces.ReadmeService for single-language previews.
func (s *Service) Render(ctx context.Context, languageSlug string) ([]byte, error) {
	loaded, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}

	slug := strings.ToLower(strings.TrimSpace(languageSlug))
	builder := NewBuilder(loaded, s.urls, s.logger)
	for _, language := range loaded.Languages {
		if language.Slug != slug {
			continue
		}
		doc, err := builder.Build(language)
		if err != nil {
			return nil, err
		}
		return []byte(doc.Render()), nil
	}
	return nil, fmt.Errorf("readme: unknown language %q", languageSlug)
}

func (s *Service) languageDir(language *interfaces.LanguageCollection) string {
	return filepath.Join(s.repoPath, catalog.ArchiveDirName, language.Letter, language.Slug)
}

func (s *Service) manifestPath() string {
	return filepath.Join(s.repoPath, manifestFileName)
}

func (s *Service) loadManifest() (*buildManifest, error) {
	if !s.manifestEnabled {
		return newBuildManifest(), nil
	}
	data, err := os.ReadFile(s.manifestPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newBuildManifest(), nil
		}
		return nil, fmt.Errorf("readme: read manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *Service) saveManifest(manifest *buildManifest) error {
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.manifestPath(), data, 0o644); err != nil {
		return fmt.Errorf("readme: write manifest: %w", err)
	}
	return nil
}

func sliceToSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}
