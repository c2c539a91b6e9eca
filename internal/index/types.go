// Package index persists catalog snapshots into an embedded database so
// reporting commands can answer without re-walking the archive.
package index

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Test status values recorded per language.
const (
	TestStatusTested     = "tested"
	TestStatusUntestable = "untestable"
	TestStatusUntested   = "untested"
)

// LanguageRecord is the persisted form of a language collection.
type LanguageRecord struct {
	bun.BaseModel `bun:"table:catalog_languages,alias:cl"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug         string    `bun:"slug,notnull" json:"slug"`
	Name         string    `bun:"name,notnull" json:"name"`
	Letter       string    `bun:"letter,notnull" json:"letter"`
	ProgramCount int       `bun:"program_count,notnull,default:0" json:"program_count"`
	MissingCount int       `bun:"missing_count,notnull,default:0" json:"missing_count"`
	TestStatus   string    `bun:"test_status,notnull" json:"test_status"`
	HasDocs      bool      `bun:"has_docs,notnull,default:false" json:"has_docs"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ProgramRecord is the persisted form of a sample program.
type ProgramRecord struct {
	bun.BaseModel `bun:"table:catalog_programs,alias:cp"`

	ID           uuid.UUID `bun:",pk,type:uuid" json:"id"`
	LanguageID   uuid.UUID `bun:"language_id,notnull,type:uuid" json:"language_id"`
	LanguageSlug string    `bun:"language_slug,notnull" json:"language_slug"`
	ProjectSlug  string    `bun:"project_slug,notnull" json:"project_slug"`
	ProjectName  string    `bun:"project_name,notnull" json:"project_name"`
	FileName     string    `bun:"file_name,notnull" json:"file_name"`
	Checksum     string    `bun:"checksum,notnull" json:"checksum"`
	HasDocs      bool      `bun:"has_docs,notnull,default:false" json:"has_docs"`
}
