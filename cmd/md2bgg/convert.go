package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lebigot/md2bgg"
	"github.com/lebigot/md2bgg/internal/config"
	"github.com/lebigot/md2bgg/internal/fileutil"
	"github.com/lebigot/md2bgg/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteBGG           = errors.New("failed to write BGG file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputNotDirectory = errors.New("output must be a directory when converting multiple files")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve dialect (CLI flag wins over config)
	dialect, err := resolveDialect(flags.dialect, cfg)
	if err != nil {
		return err
	}

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output destination
	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	// Single file without an output destination converts to stdout.
	if output == "" && fileutil.FileExists(inputPath) {
		return convertToStdout(ctx, inputPath, dialect, env)
	}

	// Discover files to convert
	files, err := discoverFiles(inputPath, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	if len(files) > 1 && strings.HasSuffix(output, ".bgg") {
		return fmt.Errorf("%w: %s", ErrOutputNotDirectory, output)
	}

	// Create the converter pool
	poolSize := md2bgg.ResolvePoolSize(flags.workers)
	if poolSize > len(files) {
		poolSize = len(files)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool, err := md2bgg.NewConverterPool(poolSize, md2bgg.WithDialect(dialect))
	if err != nil {
		return err
	}

	// Convert files
	results := convertBatch(ctx, pool, files)

	// Print results
	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// convertToStdout converts one file and writes the markup to stdout.
func convertToStdout(ctx context.Context, inputPath string, dialect md2bgg.Dialect, env *Environment) error {
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	conv, err := md2bgg.NewConverter(md2bgg.WithDialect(dialect))
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, md2bgg.Input{Markdown: string(content)})
	if err != nil {
		if errors.Is(err, md2bgg.ErrUnsupportedHeadingLevel) {
			return fmt.Errorf("%w%s", err, hints.ForUnsupportedHeading())
		}
		return err
	}

	_, err = fmt.Fprint(env.Stdout, result.BGG)
	return err
}

// resolveDialect resolves the dialect from the CLI flag, the config, or the
// library default, in that order.
func resolveDialect(flagDialect string, cfg *config.Config) (md2bgg.Dialect, error) {
	name := flagDialect
	if name == "" {
		name = cfg.Dialect.Name
	}
	if name == "" {
		return md2bgg.DefaultDialect, nil
	}

	d := md2bgg.Dialect(name)
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("%w%s", err,
			hints.ForDialect([]string{string(md2bgg.DialectClassic), string(md2bgg.DialectExtended)}))
	}
	return d, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the BGG output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExt(inputPath, ".bgg"))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, ".bgg") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base)
		}
	}

	return filepath.Join(outputDir, base)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2bgg.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2bgg.MaxPoolSize)
	}
	return nil
}
