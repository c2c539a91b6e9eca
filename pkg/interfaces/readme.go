package interfaces

import "context"

// GenerateOptions tunes a README build run.
type GenerateOptions struct {
	// Languages limits the run to the given language slugs. Empty means all.
	Languages []string
	// Force rebuilds every README even when the manifest reports no change.
	Force bool
	// DryRun collects the build plan without writing any file.
	DryRun bool
}

// BuildResult summarizes a README build run.
type BuildResult struct {
	// Written lists language slugs whose README was (or would be) written.
	Written []string
	// Skipped lists language slugs left untouched by incremental builds.
	Skipped []string
	// Errors collects per-language failures that did not abort the run.
	Errors []BuildError
}

// BuildError pairs a language slug with the failure it produced.
type BuildError struct {
	Language string
	Err      error
}

// ReadmeService builds and writes per-language README documents.
type ReadmeService interface {
	// Generate renders READMEs for the catalog into the archive tree.
	Generate(ctx context.Context, opts GenerateOptions) (*BuildResult, error)
	// Render returns the README markdown for a single language slug.
	Render(ctx context.Context, language string) ([]byte, error)
}
