// Package bootstrap assembles a readmegen module for the CLI entrypoints so
// every subcommand shares the same wiring.
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	readmegen "github.com/goliatone/go-readmegen"
)

// Options captures configuration shared by the readmegen CLI bootstraps.
type Options struct {
	RepoPath     string
	ProjectsPath string
	DocsDir      string
	LogLevel     string
	LogFormat    string
	Manifest     bool
	IndexDSN     string
	IndexDriver  string
	// CacheTTL enables the repository caching layer for index reads when
	// positive.
	CacheTTL time.Duration
}

// Module wraps the readmegen module plus the pieces CLIs dispatch against.
type Module struct {
	Module *readmegen.Module
}

// BuildModule constructs a readmegen module configured for CLI operation.
func BuildModule(opts Options) (*Module, error) {
	cfg := readmegen.DefaultConfig()
	cfg.RepoPath = strings.TrimSpace(opts.RepoPath)

	if trimmed := strings.TrimSpace(opts.ProjectsPath); trimmed != "" {
		cfg.Catalog.ProjectsPath = trimmed
	}
	if trimmed := strings.TrimSpace(opts.DocsDir); trimmed != "" {
		cfg.Catalog.DocsDir = trimmed
		cfg.Features.Docs = true
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}
	cfg.Features.Manifest = opts.Manifest
	if trimmed := strings.TrimSpace(opts.IndexDSN); trimmed != "" {
		cfg.Index.DSN = trimmed
		cfg.Features.Index = true
	}
	if trimmed := strings.TrimSpace(opts.IndexDriver); trimmed != "" {
		cfg.Index.Driver = trimmed
	}
	if opts.CacheTTL > 0 {
		cfg.Index.CacheTTL = opts.CacheTTL
		cfg.Features.Cache = true
	}

	module, err := readmegen.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialise readmegen module: %w", err)
	}

	return &Module{Module: module}, nil
}

// SplitList parses a comma separated value list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
