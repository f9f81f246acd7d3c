package config

const SourceFileExt = ".logic"

// AsmFileExt replaces the source extension of the default output path.
const AsmFileExt = ".s"

// ConfigFileName is the project file looked up next to the input.
const ConfigFileName = "logicc.yaml"

// Symbol table and diagnostics limits
const (
	SymbolTableBuckets = 101
	MaxDiagnostics     = 256
)

// RegisterCount is the size of the code generator's register pool.
const RegisterCount = 6

// Color settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
