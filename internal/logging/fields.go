package logging

// Field names for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Rewrite fields.
	FieldCommand     = "command"
	FieldSpan        = "span"
	FieldOptions     = "options"
	FieldReplacement = "replacement"
	FieldOffset      = "offset"
	FieldBlocks      = "blocks"
	FieldEdits       = "edits"
	FieldWrite       = "write"
	FieldJobs        = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldFilesFailed     = "files_failed"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
