package logger

// Exported for white-box testing of the error formatting helpers.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
