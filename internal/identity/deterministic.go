package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LanguageUUID identifies a language collection by its archive slug.
func LanguageUUID(slug string) uuid.UUID {
	return UUID("readmegen:language:" + strings.ToLower(strings.TrimSpace(slug)))
}

// ProjectUUID identifies a registry project by its slug.
func ProjectUUID(slug string) uuid.UUID {
	return UUID("readmegen:project:" + strings.ToLower(strings.TrimSpace(slug)))
}

// ProgramUUID identifies a sample program by language and project slugs.
func ProgramUUID(languageSlug, projectSlug string) uuid.UUID {
	return UUID("readmegen:program:" + strings.ToLower(strings.TrimSpace(languageSlug)) + ":" + strings.ToLower(strings.TrimSpace(projectSlug)))
}
