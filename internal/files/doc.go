// Package files provides the directory-scoped discovery and deletion
// primitives the merge workflow is gated on.
//
// This package contains two main components:
//
// Collector: filters directory entries by extension suffix and enforces
// inclusive count bounds while accumulating, failing fast as soon as the
// maximum is exceeded. ListXML and XSD are the two call-site
// specializations used by the merge workflow.
//
// Deleter: removes a file, distinguishing a target that never existed from
// one that could not be removed.
//
// Example usage:
//
//	// Exactly one to ten payment files
//	xmlFiles, err := files.ListXML("/path/to/source", 1, 10)
//
//	// Exactly one schema
//	schema, err := files.XSD("/path/to/source")
//
//	// Remove a consumed source file
//	err = files.Delete(xmlFiles[0].Path)
package files
