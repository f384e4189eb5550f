package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Files and paths
	FieldFile     = "file"
	FieldMetadata = "metadata"
	FieldTarget   = "target"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Status
	FieldStatus = "status"

	// Glyph catalogue
	FieldGlyph      = "glyph"      // SMuFL raw name, e.g. "noteQuarterUp"
	FieldIdentifier = "identifier" // Synthesized identifier
	FieldLanguage   = "language"   // Emitter target, e.g. "go", "markdown"
)
