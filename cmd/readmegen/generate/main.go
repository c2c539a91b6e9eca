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
	if err := runGenerate(os.Args[1:]); err != nil {
		log.Fatalf("readmegen generate: %v", err)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("readmegen-generate", flag.ExitOnError)
	projects := fs.String("projects", "projects.json", "Path to the project registry, relative to the checkout")
	docsDir := fs.String("docs-dir", "", "Path to a website source checkout used for documentation links")
	languages := fs.String("language", "", "Comma separated list of language slugs to rebuild (defaults to all)")
	force := fs.Bool("force", false, "Rebuild every README regardless of the build manifest")
	dryRun := fs.Bool("dry-run", false, "Collect the build plan without writing files")
	noManifest := fs.Bool("no-manifest", false, "Disable the incremental build manifest")
	logLevel := fs.String("log", "warning", "Log level (trace, debug, info, warning, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: readmegen-generate [flags] <sample-programs-path>")
	}
	repoPath := fs.Arg(0)

	module, err := moduleBuilder(bootstrap.Options{
		RepoPath:     repoPath,
		ProjectsPath: *projects,
		DocsDir:      *docsDir,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
		Manifest:     !*noManifest,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := module.Module.GenerateHandler()
	cmd := readmecmd.GenerateCommand{
		RepoPath:  repoPath,
		Languages: bootstrap.SplitList(*languages),
		Force:     *force,
		DryRun:    *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute generate command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "readme generation completed")

	return nil
}
