package merge

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mergexml/internal/files"
)

// TotalRootTag is the root element of the merged document
const TotalRootTag = "Total"

// writeTotal combines the root elements of the source documents under a
// single total root and writes the result to path. The document is
// assembled in a temporary file and renamed into place so a failure leaves
// the target absent.
func writeTotal(path string, sources []files.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".total-*.xml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.WriteString(tmp, xml.Header); err != nil {
		return fmt.Errorf("failed to write total document: %w", err)
	}
	if _, err := fmt.Fprintf(tmp, "<%s>\n", TotalRootTag); err != nil {
		return fmt.Errorf("failed to write total document: %w", err)
	}

	for _, source := range sources {
		if err := copyRootElement(tmp, source.Path); err != nil {
			return err
		}
		if _, err := io.WriteString(tmp, "\n"); err != nil {
			return fmt.Errorf("failed to write total document: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tmp, "</%s>\n", TotalRootTag); err != nil {
		return fmt.Errorf("failed to write total document: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync total document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close total document: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move total document into place: %w", err)
	}
	return nil
}

// copyRootElement streams the root element of the document at path into w,
// dropping the XML declaration and anything else outside the root.
func copyRootElement(w io.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	decoder := xml.NewDecoder(file)
	encoder := xml.NewEncoder(w)
	depth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		default:
			// Declarations, comments and whitespace outside the root
			// are not part of the merged document
			if depth == 0 {
				continue
			}
		}

		if err := encoder.EncodeToken(token); err != nil {
			return fmt.Errorf("failed to write element from %s: %w", path, err)
		}

		// Root element fully copied
		if depth == 0 {
			break
		}
	}

	if err := encoder.Flush(); err != nil {
		return fmt.Errorf("failed to flush element from %s: %w", path, err)
	}
	return nil
}
