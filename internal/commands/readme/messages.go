// Package readmecmd exposes the README generation workflows as go-command
// messages so CLIs and hosts dispatch them through the shared handler
// foundation.
package readmecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	generateMessageType = "readmegen.readme.generate"
	previewMessageType  = "readmegen.readme.preview"
	indexMessageType    = "readmegen.catalog.index"
)

// GenerateCommand triggers a README build run over the archive tree.
type GenerateCommand struct {
	// RepoPath selects the sample programs checkout to read and write.
	RepoPath string `json:"repo_path"`
	// Languages limits the run to the given language slugs.
	Languages []string `json:"languages,omitempty"`
	// Force rebuilds every README regardless of the build manifest.
	Force bool `json:"force,omitempty"`
	// DryRun collects the build plan without persisting changes.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (GenerateCommand) Type() string { return generateMessageType }

// Validate ensures the repository path is present before handlers execute.
func (cmd GenerateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.RepoPath, validation.Required, validation.By(requireNonBlank("readmegen.readme.generate.repo_path_required", "repo path is required"))),
	)
}

// PreviewCommand renders one language README to HTML.
type PreviewCommand struct {
	// RepoPath selects the sample programs checkout to read.
	RepoPath string `json:"repo_path"`
	// Language is the archive slug to preview.
	Language string `json:"language"`
	// Output is the HTML file to write. Empty writes next to the checkout.
	Output string `json:"output,omitempty"`
}

// Type implements command.Message.
func (PreviewCommand) Type() string { return previewMessageType }

// Validate ensures the repository path and language are present.
func (cmd PreviewCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.RepoPath, validation.Required, validation.By(requireNonBlank("readmegen.readme.preview.repo_path_required", "repo path is required"))),
		validation.Field(&cmd.Language, validation.Required, validation.By(requireNonBlank("readmegen.readme.preview.language_required", "language is required"))),
	)
}

// IndexCommand snapshots the catalog into the embedded database.
type IndexCommand struct {
	// RepoPath selects the sample programs checkout to read.
	RepoPath string `json:"repo_path"`
	// DSN locates the index database.
	DSN string `json:"dsn"`
	// Driver selects the database driver. Empty defaults to sqlite.
	Driver string `json:"driver,omitempty"`
}

// Type implements command.Message.
func (IndexCommand) Type() string { return indexMessageType }

// Validate ensures the repository path and DSN are present.
func (cmd IndexCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.RepoPath, validation.Required, validation.By(requireNonBlank("readmegen.catalog.index.repo_path_required", "repo path is required"))),
		validation.Field(&cmd.DSN, validation.Required, validation.By(requireNonBlank("readmegen.catalog.index.dsn_required", "dsn is required"))),
	)
}

func requireNonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		str, _ := value.(string)
		if strings.TrimSpace(str) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
