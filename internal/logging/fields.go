package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldIndent       = "indent"
	FieldFinalNewline = "final_newline"
	FieldLogLevel     = "log_level"

	// Pipeline statistics.
	FieldBytesIn  = "bytes_in"
	FieldBytesOut = "bytes_out"
	FieldTokens   = "tokens"
	FieldNodes    = "nodes"
	FieldChanged  = "changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
