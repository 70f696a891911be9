package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldDryRun  = "dry_run"
	FieldCheck   = "check"
	FieldJobs    = "jobs"
	FieldQuality = "quality"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldReferences      = "references"
	FieldOptimized       = "optimized"
	FieldBytesSaved      = "bytes_saved"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Compression fields.
	FieldTool  = "tool"
	FieldImage = "image"
)
