package interfaces

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// NamingConvention enumerates the file naming schemes used across the
// sample programs archive. The values match the testinfo.yml contract.
type NamingConvention string

const (
	NamingCamel      NamingConvention = "camel"
	NamingHyphen     NamingConvention = "hyphen"
	NamingLower      NamingConvention = "lower"
	NamingPascal     NamingConvention = "pascal"
	NamingUnderscore NamingConvention = "underscore"
)

// Project describes an approved project from the registry. Projects are the
// canonical list of programs every language collection is measured against.
type Project struct {
	// ID is a deterministic identifier derived from the project slug.
	ID uuid.UUID
	// Name is the human readable project name (e.g. "Hello World").
	Name string
	// Slug is the normalized, URL-safe identifier (e.g. "hello-world").
	Slug string
	// Words holds the name split into lowercase words for URL queries.
	Words []string
	// RequiresParameters marks projects whose programs accept input.
	RequiresParameters bool
	// Description is optional prose from the registry.
	Description string
}

// SampleProgram is a single implementation of a project in one language.
type SampleProgram struct {
	// ID is a deterministic identifier derived from language and project.
	ID uuid.UUID
	// FileName is the file name inside the language directory.
	FileName string
	// Stem is the file name without its extension.
	Stem string
	// Extension includes the leading dot (e.g. ".py").
	Extension string
	// Project is the registry entry this program implements.
	Project Project
	// LanguageSlug identifies the owning language collection.
	LanguageSlug string
	// Checksum is the SHA-256 digest of the program source.
	Checksum []byte
	// HasDocs reports whether a documentation article exists for the
	// project/language pair.
	HasDocs bool
}

// TestInfo carries the parsed testinfo.yml for a language collection.
type TestInfo struct {
	Folder    TestFolder    `yaml:"folder"`
	Container TestContainer `yaml:"container"`
}

// TestFolder describes how sample program files are named.
type TestFolder struct {
	Extension string           `yaml:"extension"`
	Naming    NamingConvention `yaml:"naming"`
}

// TestContainer describes the docker image used to run the samples.
type TestContainer struct {
	Image string `yaml:"image"`
	Tag   string `yaml:"tag"`
	Cmd   string `yaml:"cmd"`
}

// UntestableInfo records why a language cannot be tested.
type UntestableInfo struct {
	Reason string `yaml:"reason"`
}

// LanguageCollection aggregates every sample program for one language
// together with its testing metadata.
type LanguageCollection struct {
	// ID is a deterministic identifier derived from the language slug.
	ID uuid.UUID
	// Name is the display name (e.g. "Python", "C#").
	Name string
	// Slug is the path-like name used in the archive tree (e.g. "c-sharp").
	Slug string
	// Letter is the single-character archive shard (e.g. "c").
	Letter string
	// Programs holds the completed sample programs, sorted by file name.
	Programs []SampleProgram
	// TestInfo is nil when the language has no testinfo.yml.
	TestInfo *TestInfo
	// Untestable is non-empty when the language declares untestable.yml.
	Untestable []UntestableInfo
	// HasDocs reports whether a language documentation page exists.
	HasDocs bool
	// DocsURL points at the language documentation page when HasDocs is set.
	DocsURL string
}

// CatalogService loads the sample programs corpus from disk.
type CatalogService interface {
	// Load walks the archive and assembles every language collection.
	Load(ctx context.Context) (*Catalog, error)
}

// Catalog is the loaded corpus: languages plus the approved project registry.
type Catalog struct {
	// Languages is sorted by slug.
	Languages []*LanguageCollection
	// Projects is the approved project registry, sorted by slug.
	Projects []Project
}

// TotalApprovedProjects returns the size of the registry.
func (c *Catalog) TotalApprovedProjects() int {
	if c == nil {
		return 0
	}
	return len(c.Projects)
}

// MissingProjects returns registry entries the collection has not completed,
// sorted by project name.
func (c *Catalog) MissingProjects(lang *LanguageCollection) []Project {
	if c == nil || lang == nil {
		return nil
	}
	completed := make(map[string]struct{}, len(lang.Programs))
	for _, program := range lang.Programs {
		completed[program.Project.Slug] = struct{}{}
	}
	var missing []Project
	for _, project := range c.Projects {
		if _, ok := completed[project.Slug]; !ok {
			missing = append(missing, project)
		}
	}
	sortProjectsByName(missing)
	return missing
}

func sortProjectsByName(projects []Project) {
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
}
