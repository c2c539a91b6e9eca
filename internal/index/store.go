package index

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// ErrUnknownDriver is returned when the configured driver has no dialect.
var ErrUnknownDriver = errors.New("index: unknown database driver")

// Config assembles an index Store.
type Config struct {
	// Driver selects the database driver. Only sqlite is supported.
	Driver string
	// DSN is passed through to database/sql.
	DSN string
	// CacheService optionally wraps read paths with the caching layer.
	CacheService cache.CacheService
	// KeySerializer pairs with CacheService.
	KeySerializer cache.KeySerializer
	// Logger receives structured progress entries. Nil logs nothing.
	Logger interfaces.Logger
	// Now overrides the clock, primarily for tests.
	Now func() time.Time
}

// Store owns the database handle and the catalog repositories.
type Store struct {
	db        *bun.DB
	languages repository.Repository[*LanguageRecord]
	programs  repository.Repository[*ProgramRecord]
	logger    interfaces.Logger
	now       func() time.Time
}

// Open connects to the configured database and prepares repositories.
func Open(cfg Config) (*Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = "sqlite"
	}
	switch driver {
	case "sqlite", "sqlite3":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("index: dsn is required")
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("index: open database: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		db:        db,
		languages: NewLanguageRepositoryWithCache(db, cfg.CacheService, cfg.KeySerializer),
		programs:  NewProgramRepository(db),
		logger:    logger,
		now:       now,
	}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the catalog tables when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*LanguageRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("index: create languages table: %w", err)
	}
	if _, err := s.db.NewCreateTable().Model((*ProgramRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("index: create programs table: %w", err)
	}
	return nil
}

// Snapshot replaces the persisted catalog with the supplied one.
func (s *Store) Snapshot(ctx context.Context, loaded *interfaces.Catalog) error {
	if loaded == nil {
		return fmt.Errorf("index: catalog is nil")
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	if _, err := s.db.NewDelete().Model((*ProgramRecord)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("index: clear programs: %w", err)
	}
	if _, err := s.db.NewDelete().Model((*LanguageRecord)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("index: clear languages: %w", err)
	}

	for _, language := range loaded.Languages {
		if err := ctx.Err(); err != nil {
			return err
		}

		record := &LanguageRecord{
			ID:           language.ID,
			Slug:         language.Slug,
			Name:         language.Name,
			Letter:       language.Letter,
			ProgramCount: len(language.Programs),
			MissingCount: len(loaded.MissingProjects(language)),
			TestStatus:   testStatus(language),
			HasDocs:      language.HasDocs,
			UpdatedAt:    s.now().UTC(),
		}
		if _, err := s.languages.Create(ctx, record); err != nil {
			return fmt.Errorf("index: persist language %s: %w", language.Slug, err)
		}

		for _, program := range language.Programs {
			programRecord := &ProgramRecord{
				ID:           program.ID,
				LanguageID:   language.ID,
				LanguageSlug: language.Slug,
				ProjectSlug:  program.Project.Slug,
				ProjectName:  program.Project.Name,
				FileName:     program.FileName,
				Checksum:     hex.EncodeToString(program.Checksum),
				HasDocs:      program.HasDocs,
			}
			if _, err := s.programs.Create(ctx, programRecord); err != nil {
				return fmt.Errorf("index: persist program %s/%s: %w", language.Slug, program.FileName, err)
			}
		}
	}

	s.logger.Info("index.snapshot.completed",
		"languages", len(loaded.Languages),
		"projects", len(loaded.Projects),
	)
	return nil
}

// Stats summarizes the persisted catalog.
type Stats struct {
	Languages     int
	Programs      int
	Tested        int
	Untestable    int
	MostComplete  string
	LeastComplete string
}

// Stats computes completion figures from the persisted snapshot.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	records, _, err := s.languages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("index: list languages: %w", err)
	}

	stats := &Stats{Languages: len(records)}
	best, worst := -1, -1
	for _, record := range records {
		stats.Programs += record.ProgramCount
		switch record.TestStatus {
		case TestStatusTested:
			stats.Tested++
		case TestStatusUntestable:
			stats.Untestable++
		}
		if best < 0 || record.ProgramCount > best {
			best = record.ProgramCount
			stats.MostComplete = record.Slug
		}
		if worst < 0 || record.ProgramCount < worst {
			worst = record.ProgramCount
			stats.LeastComplete = record.Slug
		}
	}
	return stats, nil
}

func testStatus(language *interfaces.LanguageCollection) string {
	switch {
	case language.TestInfo != nil:
		return TestStatusTested
	case len(language.Untestable) > 0:
		return TestStatusUntestable
	default:
		return TestStatusUntested
	}
}
