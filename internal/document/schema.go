package document

import (
	"fmt"
	"os"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/agentflare-ai/go-xsd"

	apperrors "mergexml/internal/errors"
)

// CheckSchema parses the XSD file at path and verifies it is a well-formed
// schema document. It does not validate instance documents against the
// schema; it only rejects a source directory whose single schema file is
// itself broken.
func CheckSchema(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open schema %s: %w", path, err)
	}
	defer file.Close()

	doc, err := xmldom.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to parse schema %s: %w", path, err)
	}

	validator := xsd.NewSchemaValidator()
	findings := validator.ValidateSchema(doc)
	if len(findings) > 0 {
		messages := make([]string, len(findings))
		for i, finding := range findings {
			messages[i] = fmt.Sprintf("%v", finding)
		}
		return &apperrors.InvalidSchemaError{Path: path, Findings: messages}
	}

	return nil
}
