package errors

import (
	"fmt"
)

// OutOfBoundsCountError is the internal signal raised by the file collector
// when the number of matched entries falls outside the configured inclusive
// bounds. Callers translate it into one of the public error types below;
// it never crosses the package API of a listing operation.
type OutOfBoundsCountError struct {
	Suffix string
	Min    int
	Max    int
	Actual int
}

// Error implements the error interface
func (e *OutOfBoundsCountError) Error() string {
	return fmt.Sprintf("found %d %q files, expected between %d and %d", e.Actual, e.Suffix, e.Min, e.Max)
}

// WrongFileCountError is surfaced when the XML listing violates its bounds.
type WrongFileCountError struct {
	Max int
}

// Error implements the error interface
func (e *WrongFileCountError) Error() string {
	return fmt.Sprintf("There are more than %d xml files, or the files are missing", e.Max)
}

// WrongXsdCountError is surfaced when the directory does not hold exactly
// one XSD file.
type WrongXsdCountError struct {
	Actual int
}

// Error implements the error interface
func (e *WrongXsdCountError) Error() string {
	return "There are not exactly 1 xsd files"
}

// FileNotFoundError is surfaced by delete when the target was never there.
type FileNotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// FileDeleteFailedError is surfaced by delete when the target was observed
// present but removal still failed (permissions, lock).
type FileDeleteFailedError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *FileDeleteFailedError) Error() string {
	return fmt.Sprintf("unable to delete file: %s", e.Path)
}

// Unwrap allows errors.Is and errors.As to reach the underlying cause
func (e *FileDeleteFailedError) Unwrap() error {
	return e.Cause
}

// InvalidCurrencyCodeError is surfaced by the currency gate when the code
// embedded in a document differs from the configured value.
type InvalidCurrencyCodeError struct {
	Expected string
}

// Error implements the error interface
func (e *InvalidCurrencyCodeError) Error() string {
	return "Допустимое значение кода валюты " + e.Expected
}

// MissingCurrencyCodeTagError is surfaced when a document carries no
// currency-code element at all.
type MissingCurrencyCodeTagError struct {
	Tag  string
	Path string
}

// Error implements the error interface
func (e *MissingCurrencyCodeTagError) Error() string {
	return fmt.Sprintf("no %q element found in %s", e.Tag, e.Path)
}

// InvalidSchemaError is surfaced when the discovered XSD file is not a
// well-formed schema.
type InvalidSchemaError struct {
	Path     string
	Findings []string
}

// Error implements the error interface
func (e *InvalidSchemaError) Error() string {
	return fmt.Sprintf("schema %s is invalid: %d findings", e.Path, len(e.Findings))
}
