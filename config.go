package readmegen

import "github.com/goliatone/go-readmegen/internal/runtimeconfig"

var (
	ErrRepoPathRequired     = runtimeconfig.ErrRepoPathRequired
	ErrProjectsPathRequired = runtimeconfig.ErrProjectsPathRequired
	ErrIndexDSNRequired     = runtimeconfig.ErrIndexDSNRequired
	ErrIndexDriverUnknown   = runtimeconfig.ErrIndexDriverUnknown
	ErrCacheTTLInvalid      = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	CatalogConfig  = runtimeconfig.CatalogConfig
	GenerateConfig = runtimeconfig.GenerateConfig
	PreviewConfig  = runtimeconfig.PreviewConfig
	IndexConfig    = runtimeconfig.IndexConfig
	URLConfig      = runtimeconfig.URLConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	Features       = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
