// Package runtimeconfig holds the host-facing configuration surface for the
// readmegen module. Fields intentionally use simple types so host
// applications can populate them from flags, env vars, or config files.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrRepoPathRequired = errors.New("readmegen config: repository path is required")
var ErrProjectsPathRequired = errors.New("readmegen config: projects registry path is required")
var ErrIndexDSNRequired = errors.New("readmegen config: index dsn is required when the index feature is enabled")
var ErrIndexDriverUnknown = errors.New("readmegen config: index driver is invalid")
var ErrCacheTTLInvalid = errors.New("readmegen config: cache ttl must be zero or positive")
var ErrLoggingLevelInvalid = errors.New("readmegen config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("readmegen config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for readmegen.
type Config struct {
	// RepoPath is the sample programs checkout to read and write.
	RepoPath string
	Catalog  CatalogConfig
	Generate GenerateConfig
	Preview  PreviewConfig
	Index    IndexConfig
	URLs     URLConfig
	Logging  LoggingConfig
	Features Features
}

// CatalogConfig captures configuration for the archive walker.
type CatalogConfig struct {
	// ProjectsPath locates the project registry relative to RepoPath.
	ProjectsPath string
	// DocsDir optionally points at a documentation checkout for doc links.
	DocsDir string
}

// GenerateConfig captures README build behaviour.
type GenerateConfig struct {
	// Languages limits a run to the given slugs. Empty means all.
	Languages []string
	Force     bool
	DryRun    bool
}

// PreviewConfig captures HTML preview behaviour.
type PreviewConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// IndexConfig captures the embedded catalog database bindings.
type IndexConfig struct {
	Driver   string
	DSN      string
	CacheTTL time.Duration
}

// URLConfig overrides the documentation and issue link targets.
type URLConfig struct {
	SiteBaseURL     string
	GithubBaseURL   string
	SampleRepoPath  string
	WebsiteRepoPath string
	IssueTemplate   string
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Manifest bool
	Index    bool
	Cache    bool
	Docs     bool
}

// DefaultConfig returns opinionated defaults matching the CLI expectations.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			ProjectsPath: "projects.json",
		},
		Preview: PreviewConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Index: IndexConfig{
			Driver: "sqlite",
			DSN:    "file:readmegen.db?cache=shared",
		},
		Logging: LoggingConfig{
			Level:  "warning",
			Format: "console",
		},
		Features: Features{
			Manifest: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.RepoPath) == "" {
		return ErrRepoPathRequired
	}
	if strings.TrimSpace(cfg.Catalog.ProjectsPath) == "" {
		return ErrProjectsPathRequired
	}
	if cfg.Features.Index {
		if strings.TrimSpace(cfg.Index.DSN) == "" {
			return ErrIndexDSNRequired
		}
		if driver := normalizeDriver(cfg.Index.Driver); driver != "" && !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrIndexDriverUnknown, driver)
		}
	}
	if cfg.Index.CacheTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "sqlite3":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
