// Package validation holds the per-document gates a payment file must pass
// before it is merged.
package validation

import (
	"context"
	"log/slog"

	"mergexml/internal/config"
	"mergexml/internal/document"
	apperrors "mergexml/internal/errors"
)

// CurrencyValidator checks that the currency code embedded in a payment
// document matches the configured value. It is a pure gate: no side
// effects, safe to call repeatedly on the same file and configuration.
type CurrencyValidator struct {
	tag    string
	logger *slog.Logger
}

// NewCurrencyValidator creates a validator reading the given element tag
func NewCurrencyValidator(tag string, logger *slog.Logger) *CurrencyValidator {
	if tag == "" {
		tag = config.DefaultCurrencyCodeTag
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrencyValidator{
		tag:    tag,
		logger: logger.With(slog.String("component", "currency_validator")),
	}
}

// Validate parses the document at path and compares the text content of the
// first currency-code element against expectedCode. A missing element is an
// explicit MissingCurrencyCodeTagError rather than a blind dereference; a
// mismatch is InvalidCurrencyCodeError carrying the expected value.
// Parsing failures are the parser's own errors, propagated unchanged.
func (v *CurrencyValidator) Validate(ctx context.Context, path, expectedCode string) error {
	doc, err := document.Parse(path)
	if err != nil {
		return err
	}

	code, ok := doc.FirstText(v.tag)
	if !ok {
		v.logger.ErrorContext(ctx, "Currency code element missing",
			slog.String("file", path),
			slog.String("tag", v.tag))
		return &apperrors.MissingCurrencyCodeTagError{Tag: v.tag, Path: path}
	}

	if code != expectedCode {
		v.logger.WarnContext(ctx, "Currency code mismatch",
			slog.String("file", path),
			slog.String("expected", expectedCode),
			slog.String("actual", code))
		return &apperrors.InvalidCurrencyCodeError{Expected: expectedCode}
	}

	v.logger.DebugContext(ctx, "Currency code validated",
		slog.String("file", path),
		slog.String("code", code))
	return nil
}
