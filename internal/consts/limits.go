package consts

// Application identity
const (
	// AppName is used for the config directory and as fallback program name
	AppName = "ttok"
)

// Tokenizer defaults
const (
	// DefaultEncoding is the encoding used when neither flags nor settings select one
	DefaultEncoding = "o200k_base"
)

// External diff tool
const (
	// DefaultGitBinary is the diff tool looked up on PATH
	DefaultGitBinary = "git"
)

// Environment variables overriding the settings file
const (
	EnvConfigPath = "TTOK_CONFIG"
	EnvEncoding   = "TTOK_ENCODING"
	EnvGitBinary  = "TTOK_GIT"
	EnvOffline    = "TTOK_OFFLINE"
	EnvLogLevel   = "TTOK_LOG_LEVEL"
	EnvLogPath    = "TTOK_LOG_PATH"

	EnvCPUProfile   = "TTOK_CPU_PROFILE"
	EnvHeapProfile  = "TTOK_HEAP_PROFILE"
	EnvTraceProfile = "TTOK_TRACE_PROFILE"
)
