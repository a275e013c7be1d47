// Package merge implements the payment merge workflow: discover the source
// files, gate every document on its currency code, and write the combined
// total document.
package merge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"mergexml/internal/config"
	"mergexml/internal/document"
	"mergexml/internal/files"
	"mergexml/internal/infrastructure"
	"mergexml/internal/validation"
)

// Service runs the merge workflow. Each call is independent; the service
// holds configuration only.
type Service struct {
	cfg       config.MergeConfig
	validator *validation.CurrencyValidator
	metrics   *infrastructure.Metrics
	logger    *slog.Logger
}

// Result describes a completed merge
type Result struct {
	TargetFile  string `json:"target_file"`
	FilesMerged int    `json:"files_merged"`
	Schema      string `json:"schema"`
}

// NewService creates a merge service. metrics may be nil (CLI usage).
func NewService(cfg config.MergeConfig, metrics *infrastructure.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		validator: validation.NewCurrencyValidator(cfg.CurrencyCodeTag, logger),
		metrics:   metrics,
		logger:    logger.With(slog.String("component", "merge")),
	}
}

// Merge runs the workflow against source. An empty source falls back to the
// configured source directory. There is no partial success: any failure
// aborts the whole merge and leaves the target directory untouched.
func (s *Service) Merge(ctx context.Context, source string) (*Result, error) {
	start := time.Now()
	result, err := s.merge(ctx, source)
	s.record(ctx, err, time.Since(start))
	return result, err
}

func (s *Service) merge(ctx context.Context, source string) (*Result, error) {
	if source == "" {
		source = s.cfg.SourceDir
	}

	s.logger.InfoContext(ctx, "Merge started",
		slog.String("source", source),
		slog.Int("min_files", s.cfg.MinFileCount),
		slog.Int("max_files", s.cfg.MaxFileCount))

	xmlFiles, err := files.ListXML(source, s.cfg.MinFileCount, s.cfg.MaxFileCount)
	if err != nil {
		return nil, err
	}

	schema, err := files.XSD(source)
	if err != nil {
		return nil, err
	}

	if err := document.CheckSchema(schema.Path); err != nil {
		return nil, err
	}

	// Every document passes the currency gate before anything is written
	for _, file := range xmlFiles {
		if err := s.validator.Validate(ctx, file.Path, s.cfg.CurrencyCode); err != nil {
			if s.metrics != nil {
				s.metrics.ValidationFailures.Add(ctx, 1)
			}
			return nil, err
		}
	}

	target := filepath.Join(s.cfg.TargetDir, fmt.Sprintf("total_%s.xml", time.Now().Format("20060102_150405")))
	if err := writeTotal(target, xmlFiles); err != nil {
		return nil, err
	}

	if s.cfg.DeleteAfterMerge {
		for _, file := range xmlFiles {
			if err := files.Delete(file.Path); err != nil {
				return nil, err
			}
		}
	}

	s.logger.InfoContext(ctx, "Merge completed",
		slog.String("target", target),
		slog.Int("files_merged", len(xmlFiles)))

	return &Result{
		TargetFile:  target,
		FilesMerged: len(xmlFiles),
		Schema:      schema.Path,
	}, nil
}

func (s *Service) record(ctx context.Context, err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	s.metrics.MergesTotal.Add(ctx, 1, attrs)
	s.metrics.MergeDuration.Record(ctx, elapsed.Seconds(), attrs)
}
