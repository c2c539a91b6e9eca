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
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("readmegen preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("readmegen-preview", flag.ExitOnError)
	projects := fs.String("projects", "projects.json", "Path to the project registry, relative to the checkout")
	docsDir := fs.String("docs-dir", "", "Path to a website source checkout used for documentation links")
	language := fs.String("language", "", "Language slug to preview")
	output := fs.String("output", "", "HTML file to write (defaults to <path>/<language>.html)")
	logLevel := fs.String("log", "warning", "Log level (trace, debug, info, warning, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: readmegen-preview [flags] <sample-programs-path>")
	}
	repoPath := fs.Arg(0)

	module, err := moduleBuilder(bootstrap.Options{
		RepoPath:     repoPath,
		ProjectsPath: *projects,
		DocsDir:      *docsDir,
		LogLevel:     *logLevel,
		LogFormat:    *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := module.Module.PreviewHandler()
	cmd := readmecmd.PreviewCommand{
		RepoPath: repoPath,
		Language: *language,
		Output:   *output,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute preview command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "readme preview written")

	return nil
}
