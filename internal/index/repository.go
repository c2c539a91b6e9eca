package index

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewLanguageRepository creates a repository for LanguageRecord entities.
func NewLanguageRepository(db *bun.DB) repository.Repository[*LanguageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*LanguageRecord]{
		NewRecord:          func() *LanguageRecord { return &LanguageRecord{} },
		GetID:              func(r *LanguageRecord) uuid.UUID { return r.ID },
		SetID:              func(r *LanguageRecord, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *LanguageRecord) string { return r.Slug },
	})
}

// NewProgramRepository creates a repository for ProgramRecord entities.
func NewProgramRepository(db *bun.DB) repository.Repository[*ProgramRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ProgramRecord]{
		NewRecord:          func() *ProgramRecord { return &ProgramRecord{} },
		GetID:              func(r *ProgramRecord) uuid.UUID { return r.ID },
		SetID:              func(r *ProgramRecord, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "" },
		GetIdentifierValue: func(*ProgramRecord) string { return "" },
	})
}

// NewLanguageRepositoryWithCache wraps the language repository with the
// caching layer when both collaborators are supplied.
func NewLanguageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) repository.Repository[*LanguageRecord] {
	base := NewLanguageRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return base
}
