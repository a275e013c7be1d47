package files

import (
	"log/slog"
	"os"

	apperrors "mergexml/internal/errors"
)

// Delete removes the file at path. Existence is observed before the removal
// attempt so a failure can distinguish a target that was never there from
// one that could not be removed. The stat/remove pair is not atomic against
// external interference; single-process usage accepts that race.
func Delete(path string) error {
	_, statErr := os.Stat(path)
	present := statErr == nil

	if err := os.Remove(path); err != nil {
		if !present {
			return &apperrors.FileNotFoundError{Path: path}
		}
		return &apperrors.FileDeleteFailedError{Path: path, Cause: err}
	}

	slog.Debug("Deleted file", slog.String("path", path))
	return nil
}
