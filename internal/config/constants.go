package config

// File extensions recognized by the collector
const (
	XMLExtension = ".xml"
	XSDExtension = ".xsd"
)

// XSDFileCount is the number of XSD files a source directory must hold.
const XSDFileCount = 1

// Defaults for the merge section
const (
	DefaultMinFileCount    = 1
	DefaultMaxFileCount    = 10
	DefaultCurrencyCode    = "643"
	DefaultCurrencyCodeTag = "CurrCode"
)
