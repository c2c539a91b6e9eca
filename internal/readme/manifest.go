package readme

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

const (
	manifestFileName    = ".readmegen-manifest.json"
	manifestFileVersion = 1
)

// buildManifest stores metadata about the last successful build to support
// incremental runs. The wire format keeps languages as a slug-ordered list
// so repeated builds produce byte-identical manifests.
type buildManifest struct {
	Version     int
	GeneratedAt time.Time
	Languages   map[string]manifestLanguage
}

type manifestWire struct {
	Version     int                `json:"version"`
	GeneratedAt time.Time          `json:"generated_at"`
	Languages   []manifestLanguage `json:"languages"`
}

type manifestLanguage struct {
	LanguageID  string    `json:"language_id"`
	Slug        string    `json:"slug"`
	Output      string    `json:"output"`
	Fingerprint string    `json:"fingerprint"`
	Checksum    string    `json:"checksum"`
	RenderedAt  time.Time `json:"rendered_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version:   manifestFileVersion,
		Languages: map[string]manifestLanguage{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var wire manifestWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("readme: parse manifest: %w", err)
	}
	manifest := newBuildManifest()
	if wire.Version != 0 {
		manifest.Version = wire.Version
	}
	manifest.GeneratedAt = wire.GeneratedAt
	for _, entry := range wire.Languages {
		manifest.Languages[entry.Slug] = entry
	}
	return manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	wire := manifestWire{
		Version:     m.Version,
		GeneratedAt: m.GeneratedAt,
	}
	if wire.Version == 0 {
		wire.Version = manifestFileVersion
	}
	if len(m.Languages) > 0 {
		wire.Languages = make([]manifestLanguage, 0, len(m.Languages))
		for _, entry := range m.Languages {
			wire.Languages = append(wire.Languages, entry)
		}
		sort.Slice(wire.Languages, func(i, j int) bool {
			return wire.Languages[i].Slug < wire.Languages[j].Slug
		})
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("readme: marshal manifest: %w", err)
	}
	return data, nil
}

// languageFingerprint digests everything that influences a language README:
// its programs, testing metadata, docs flags, and the registry size that
// feeds the completion header.
func languageFingerprint(language *interfaces.LanguageCollection, totalProjects int) string {
	h := sha256.New()
	fmt.Fprintf(h, "v%d\n", manifestFileVersion)
	fmt.Fprintf(h, "language:%s\n", language.Slug)
	fmt.Fprintf(h, "name:%s\n", language.Name)
	fmt.Fprintf(h, "total:%d\n", totalProjects)
	fmt.Fprintf(h, "docs:%t\n", language.HasDocs)

	for _, program := range language.Programs {
		fmt.Fprintf(h, "program:%s:%s:%t:%s\n",
			program.FileName,
			program.Project.Slug,
			program.HasDocs,
			hex.EncodeToString(program.Checksum),
		)
	}

	if info := language.TestInfo; info != nil {
		fmt.Fprintf(h, "testinfo:%s:%s:%s:%s\n",
			info.Folder.Extension, info.Folder.Naming,
			info.Container.Image, info.Container.Tag,
		)
	}
	for _, entry := range language.Untestable {
		fmt.Fprintf(h, "untestable:%s\n", strings.TrimSpace(entry.Reason))
	}

	return hex.EncodeToString(h.Sum(nil))
}

func contentChecksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
