package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-readmegen/cmd/readmegen/internal/bootstrap"
	readmecmd "github.com/goliatone/go-readmegen/internal/commands/readme"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runStats(os.Args[1:]); err != nil {
		log.Fatalf("readmegen stats: %v", err)
	}
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("readmegen-stats", flag.ExitOnError)
	projects := fs.String("projects", "projects.json", "Path to the project registry, relative to the checkout")
	dsn := fs.String("dsn", "file:readmegen.db?cache=shared", "Index database DSN")
	driver := fs.String("driver", "sqlite", "Index database driver")
	refresh := fs.Bool("refresh", true, "Re-index the checkout before reporting")
	cacheTTL := fs.Duration("cache-ttl", 0, "Cache index reads for the given duration (0 disables caching)")
	logLevel := fs.String("log", "warning", "Log level (trace, debug, info, warning, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: readmegen-stats [flags] <sample-programs-path>")
	}
	repoPath := fs.Arg(0)

	module, err := moduleBuilder(bootstrap.Options{
		RepoPath:     repoPath,
		ProjectsPath: *projects,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
		IndexDSN:     *dsn,
		IndexDriver:  *driver,
		CacheTTL:     *cacheTTL,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	if *refresh {
		handler := module.Module.IndexHandler()
		cmd := readmecmd.IndexCommand{
			RepoPath: repoPath,
			DSN:      *dsn,
			Driver:   *driver,
		}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute index command: %w", err)
		}
	}

	store, err := module.Module.OpenIndex()
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	fmt.Fprintf(os.Stdout, "languages:      %d\n", stats.Languages)
	fmt.Fprintf(os.Stdout, "programs:       %d\n", stats.Programs)
	fmt.Fprintf(os.Stdout, "tested:         %d\n", stats.Tested)
	fmt.Fprintf(os.Stdout, "untestable:     %d\n", stats.Untestable)
	fmt.Fprintf(os.Stdout, "most complete:  %s\n", stats.MostComplete)
	fmt.Fprintf(os.Stdout, "least complete: %s\n", stats.LeastComplete)

	return nil
}
