package domain

import "go.trai.ch/zerr"

var (
	// ErrCompileFailed is returned when at least one shader stage fails to compile.
	ErrCompileFailed = zerr.New("shader compilation failed")

	// ErrLinkFailed is returned when the compiled stages fail to link into a program.
	ErrLinkFailed = zerr.New("shader link failed")

	// ErrShaderSyntax is returned by the compiler when a stage source is malformed.
	ErrShaderSyntax = zerr.New("shader syntax error")

	// ErrMissingStage is returned when linking without a required stage.
	ErrMissingStage = zerr.New("missing shader stage")

	// ErrInvalidPollInterval is returned when a non-positive poll interval is configured.
	ErrInvalidPollInterval = zerr.New("poll interval must be positive")

	// ErrUnknownPrimitive is returned when a geometry primitive name is not recognized.
	ErrUnknownPrimitive = zerr.New("unknown geometry primitive")

	// ErrConfigNotFound is returned when no configuration file can be located.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrInvalidConfig is returned when the configuration file fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrDuplicateProgram is returned when two programs share a name.
	ErrDuplicateProgram = zerr.New("duplicate program name")

	// ErrNoPrograms is returned when the configuration declares no programs.
	ErrNoPrograms = zerr.New("no programs configured")

	// ErrCheckFailed is returned when one or more programs fail a one-shot check.
	ErrCheckFailed = zerr.New("one or more programs failed to build")
)
