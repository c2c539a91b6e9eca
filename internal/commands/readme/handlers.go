package readmecmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-readmegen/internal/commands"
	"github.com/goliatone/go-readmegen/internal/index"
	"github.com/goliatone/go-readmegen/internal/logging"
	"github.com/goliatone/go-readmegen/pkg/interfaces"
)

const (
	generateOperation = "readme.generate"
	previewOperation  = "readme.preview"
	indexOperation    = "catalog.index"
)

// ReadmeServiceFactory builds a README service bound to a checkout path.
type ReadmeServiceFactory func(repoPath string) (interfaces.ReadmeService, error)

// CatalogServiceFactory builds a catalog loader bound to a checkout path.
type CatalogServiceFactory func(repoPath string) (interfaces.CatalogService, error)

// IndexStoreFactory opens the index database.
type IndexStoreFactory func(driver, dsn string) (*index.Store, error)

var (
	_ command.Commander[GenerateCommand] = (*GenerateHandler)(nil)
	_ command.Commander[PreviewCommand]  = (*PreviewHandler)(nil)
	_ command.Commander[IndexCommand]    = (*IndexHandler)(nil)
)

// GenerateHandler orchestrates README build runs via the shared command
// handler foundation.
type GenerateHandler struct {
	inner *commands.Handler[GenerateCommand]
}

// NewGenerateHandler creates a handler bound to the supplied service factory.
func NewGenerateHandler(factory ReadmeServiceFactory, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateCommand]) *GenerateHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg GenerateCommand) error {
		service, err := factory(msg.RepoPath)
		if err != nil {
			return err
		}

		result, err := service.Generate(ctx, interfaces.GenerateOptions{
			Languages: msg.Languages,
			Force:     msg.Force,
			DryRun:    msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"written_count": len(result.Written),
				"skipped_count": len(result.Skipped),
				"error_count":   len(result.Errors),
				"dry_run":       msg.DryRun,
			}).Info("readme.command.generate.completed")
			if len(result.Errors) > 0 {
				return fmt.Errorf("readme generate finished with %d language failures", len(result.Errors))
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateCommand]{
		commands.WithLogger[GenerateCommand](baseLogger),
		commands.WithOperation[GenerateCommand](generateOperation),
		commands.WithMessageFields(func(msg GenerateCommand) map[string]any {
			fields := map[string]any{
				"repo_path": msg.RepoPath,
			}
			if len(msg.Languages) > 0 {
				fields["languages"] = strings.Join(msg.Languages, ",")
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateCommand].
func (h *GenerateHandler) Execute(ctx context.Context, msg GenerateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewHandler renders a single language README to HTML.
type PreviewHandler struct {
	inner *commands.Handler[PreviewCommand]
}

// NewPreviewHandler creates a handler bound to the supplied collaborators.
func NewPreviewHandler(factory ReadmeServiceFactory, parser interfaces.MarkdownParser, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewCommand]) *PreviewHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewCommand) error {
		if parser == nil {
			return fmt.Errorf("readme preview: markdown parser not configured")
		}

		service, err := factory(msg.RepoPath)
		if err != nil {
			return err
		}

		markdown, err := service.Render(ctx, msg.Language)
		if err != nil {
			return err
		}

		html, err := parser.Parse(markdown)
		if err != nil {
			return err
		}

		output := strings.TrimSpace(msg.Output)
		if output == "" {
			output = filepath.Join(msg.RepoPath, msg.Language+".html")
		}
		if err := os.WriteFile(output, html, 0o644); err != nil {
			return fmt.Errorf("readme preview: write %s: %w", output, err)
		}

		logging.WithFields(baseLogger, map[string]any{
			"language": msg.Language,
			"output":   output,
		}).Info("readme.command.preview.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewCommand]{
		commands.WithLogger[PreviewCommand](baseLogger),
		commands.WithOperation[PreviewCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewCommand) map[string]any {
			return map[string]any{
				"repo_path": msg.RepoPath,
				"language":  msg.Language,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewCommand].
func (h *PreviewHandler) Execute(ctx context.Context, msg PreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}

// IndexHandler snapshots the catalog into the embedded database.
type IndexHandler struct {
	inner *commands.Handler[IndexCommand]
}

// NewIndexHandler creates a handler bound to the supplied collaborators.
func NewIndexHandler(catalogs CatalogServiceFactory, stores IndexStoreFactory, logger interfaces.Logger, opts ...commands.HandlerOption[IndexCommand]) *IndexHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg IndexCommand) error {
		service, err := catalogs(msg.RepoPath)
		if err != nil {
			return err
		}

		loaded, err := service.Load(ctx)
		if err != nil {
			return err
		}

		store, err := stores(msg.Driver, msg.DSN)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Snapshot(ctx, loaded); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"languages": len(loaded.Languages),
			"projects":  len(loaded.Projects),
		}).Info("readme.command.index.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[IndexCommand]{
		commands.WithLogger[IndexCommand](baseLogger),
		commands.WithOperation[IndexCommand](indexOperation),
		commands.WithMessageFields(func(msg IndexCommand) map[string]any {
			return map[string]any{
				"repo_path": msg.RepoPath,
				"dsn":       msg.DSN,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &IndexHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[IndexCommand].
func (h *IndexHandler) Execute(ctx context.Context, msg IndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
