// Command premerge runs the merge pre-processing gate against a source
// directory: bounds-checked file discovery, schema sanity check and the
// per-document currency gate. With -merge it also writes the total document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mergexml/internal/config"
	"mergexml/internal/document"
	"mergexml/internal/files"
	"mergexml/internal/infrastructure"
	"mergexml/internal/merge"
	"mergexml/internal/validation"
)

func main() {
	sourceDir := flag.String("source", "", "source directory with payment XML files (defaults to data/source relative to executable)")
	targetDir := flag.String("target", "", "target directory for the merged document (defaults to data/target relative to executable)")
	currencyCode := flag.String("code", "", "expected currency code (defaults to configured value)")
	runMerge := flag.Bool("merge", false, "write the merged total document after validation")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()

	if *sourceDir != "" {
		cfg.Merge.SourceDir = *sourceDir
	}
	if *targetDir != "" {
		cfg.Merge.TargetDir = *targetDir
	}
	if *currencyCode != "" {
		cfg.Merge.CurrencyCode = *currencyCode
	}

	ctx := infrastructure.EnsureTraceID(context.Background())
	logger.InfoContext(ctx, "Starting pre-merge validation",
		slog.String("source", cfg.Merge.SourceDir),
		slog.String("currency_code", cfg.Merge.CurrencyCode),
		slog.Bool("merge", *runMerge))

	if *runMerge {
		service := merge.NewService(cfg.Merge, nil, logger)
		result, err := service.Merge(ctx, "")
		if err != nil {
			logger.ErrorContext(ctx, "Merge failed", slog.String("error", err.Error()))
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("merged %d files into %s\n", result.FilesMerged, result.TargetFile)
		return
	}

	if err := validate(ctx, cfg.Merge, logger); err != nil {
		logger.ErrorContext(ctx, "Validation failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("source directory passed pre-merge validation")
}

// validate runs the gate without writing anything
func validate(ctx context.Context, cfg config.MergeConfig, logger *slog.Logger) error {
	xmlFiles, err := files.ListXML(cfg.SourceDir, cfg.MinFileCount, cfg.MaxFileCount)
	if err != nil {
		return err
	}

	schema, err := files.XSD(cfg.SourceDir)
	if err != nil {
		return err
	}
	if err := document.CheckSchema(schema.Path); err != nil {
		return err
	}

	validator := validation.NewCurrencyValidator(cfg.CurrencyCodeTag, logger)
	for _, file := range xmlFiles {
		if err := validator.Validate(ctx, file.Path, cfg.CurrencyCode); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Source directory validated",
		slog.Int("xml_files", len(xmlFiles)),
		slog.String("schema", schema.Name))
	return nil
}
