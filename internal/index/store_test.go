package index

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"

	"github.com/goliatone/go-readmegen/internal/identity"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "index.db")
	store, err := Open(Config{
		Driver: "sqlite",
		DSN:    dsn,
		Now:    func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func snapshotCatalog() *interfaces.Catalog {
	hello := interfaces.Project{
		ID:   identity.ProjectUUID("hello-world"),
		Name: "Hello World",
		Slug: "hello-world",
	}
	fizz := interfaces.Project{
		ID:   identity.ProjectUUID("fizz-buzz"),
		Name: "Fizz Buzz",
		Slug: "fizz-buzz",
	}

	golang := &interfaces.LanguageCollection{
		ID:     identity.LanguageUUID("go"),
		Name:   "Go",
		Slug:   "go",
		Letter: "g",
		Programs: []interfaces.SampleProgram{
			{
				ID:           identity.ProgramUUID("go", "hello-world"),
				FileName:     "hello-world.go",
				Project:      hello,
				LanguageSlug: "go",
				Checksum:     []byte{0x01, 0x02},
			},
		},
		TestInfo: &interfaces.TestInfo{
			Folder:    interfaces.TestFolder{Extension: ".go", Naming: interfaces.NamingHyphen},
			Container: interfaces.TestContainer{Image: "golang", Tag: "latest"},
		},
	}
	python := &interfaces.LanguageCollection{
		ID:         identity.LanguageUUID("python"),
		Name:       "Python",
		Slug:       "python",
		Letter:     "p",
		Untestable: []interfaces.UntestableInfo{{Reason: "interactive"}},
	}

	return &interfaces.Catalog{
		Languages: []*interfaces.LanguageCollection{golang, python},
		Projects:  []interfaces.Project{fizz, hello},
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "postgres", DSN: "ignored"})
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(Config{Driver: "sqlite"}); err == nil {
		t.Fatal("expected missing dsn error")
	}
}

func TestSnapshotAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Snapshot(ctx, snapshotCatalog()); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Languages != 2 {
		t.Fatalf("expected 2 languages, got %d", stats.Languages)
	}
	if stats.Programs != 1 {
		t.Fatalf("expected 1 program, got %d", stats.Programs)
	}
	if stats.Tested != 1 {
		t.Fatalf("expected 1 tested language, got %d", stats.Tested)
	}
	if stats.Untestable != 1 {
		t.Fatalf("expected 1 untestable language, got %d", stats.Untestable)
	}
	if stats.MostComplete != "go" {
		t.Fatalf("unexpected most complete: %q", stats.MostComplete)
	}
	if stats.LeastComplete != "python" {
		t.Fatalf("unexpected least complete: %q", stats.LeastComplete)
	}
}

func TestSnapshotAndStatsWithCachedRepository(t *testing.T) {
	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}

	store, err := Open(Config{
		Driver:        "sqlite",
		DSN:           filepath.Join(t.TempDir(), "index.db"),
		CacheService:  cacheService,
		KeySerializer: repocache.NewDefaultKeySerializer(),
	})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	if err := store.Snapshot(ctx, snapshotCatalog()); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	first, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if first.Languages != 2 || first.Programs != 1 {
		t.Fatalf("unexpected stats through cached repository: %+v", first)
	}

	// Second read is served through the caching layer and must agree.
	second, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("cached Stats returned error: %v", err)
	}
	if *second != *first {
		t.Fatalf("cached stats diverged: first %+v, second %+v", first, second)
	}
}

func TestSnapshotReplacesPreviousRun(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	loaded := snapshotCatalog()
	if err := store.Snapshot(ctx, loaded); err != nil {
		t.Fatalf("first Snapshot returned error: %v", err)
	}

	// Drop python and snapshot again; the store must not accumulate rows.
	loaded.Languages = loaded.Languages[:1]
	if err := store.Snapshot(ctx, loaded); err != nil {
		t.Fatalf("second Snapshot returned error: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Languages != 1 {
		t.Fatalf("expected snapshot to replace rows, got %d languages", stats.Languages)
	}
}

func TestSnapshotNilCatalog(t *testing.T) {
	store := openTestStore(t)
	if err := store.Snapshot(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil catalog")
	}
}

func TestCloseNilStore(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil store returned error: %v", err)
	}
}
