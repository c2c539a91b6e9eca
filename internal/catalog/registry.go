package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-readmegen/internal/identity"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

// projectsSchema validates the shape of the approved projects registry
// before any entry is materialized.
const projectsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["name"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "slug": {"type": "string", "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"},
      "requires_parameters": {"type": "boolean"},
      "description": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

var compiledProjectsSchema = mustCompileProjectsSchema()

func mustCompileProjectsSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("projects.schema.json", strings.NewReader(projectsSchema)); err != nil {
		panic(fmt.Sprintf("catalog: add projects schema: %v", err))
	}
	schema, err := compiler.Compile("projects.schema.json")
	if err != nil {
		panic(fmt.Sprintf("catalog: compile projects schema: %v", err))
	}
	return schema
}

type registryEntry struct {
	Name               string `json:"name"`
	Slug               string `json:"slug,omitempty"`
	RequiresParameters bool   `json:"requires_parameters,omitempty"`
	Description        string `json:"description,omitempty"`
}

// ParseProjects decodes and validates the projects registry document. The
// returned slice is sorted by slug.
func ParseProjects(data []byte) ([]interfaces.Project, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode projects registry: %w", err)
	}
	if err := compiledProjectsSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("catalog: validate projects registry: %w", err)
	}

	var entries []registryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: decode projects registry: %w", err)
	}

	projects := make([]interfaces.Project, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		project, err := newProject(entry)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[project.Slug]; ok {
			return nil, fmt.Errorf("catalog: duplicate project slug %q", project.Slug)
		}
		seen[project.Slug] = struct{}{}
		projects = append(projects, project)
	}
	sortProjectsBySlug(projects)
	return projects, nil
}

func newProject(entry registryEntry) (interfaces.Project, error) {
	name := strings.TrimSpace(entry.Name)
	projectSlug := strings.TrimSpace(entry.Slug)
	if projectSlug == "" {
		normalized, err := Slugify(name)
		if err != nil {
			return interfaces.Project{}, fmt.Errorf("catalog: slugify project %q: %w", name, err)
		}
		projectSlug = normalized
	}

	return interfaces.Project{
		ID:                 identity.ProjectUUID(projectSlug),
		Name:               name,
		Slug:               projectSlug,
		Words:              strings.Fields(strings.ToLower(name)),
		RequiresParameters: entry.RequiresParameters,
		Description:        strings.TrimSpace(entry.Description),
	}, nil
}

func sortProjectsBySlug(projects []interfaces.Project) {
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Slug < projects[j].Slug
	})
}
