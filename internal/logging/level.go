package logging

// Level represents a log level. Levels are ordered so that a logger at a given
// level emits everything at that level and below.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only errors which abort a command are logged.
	LevelError
	// LevelWarn additionally logs recoverable problems, such as input lines
	// that were skipped.
	LevelWarn
	// LevelInfo additionally logs progress information.
	LevelInfo
	// LevelDebug additionally logs per-operation details.
	LevelDebug
	// LevelTrace logs everything.
	LevelTrace
)

// NameToLevel converts the name of a log level to its Level value. It returns
// false if the name is not recognised, in which case LevelDisabled is
// returned.
func NameToLevel(name string) (Level, bool) {
	switch name {
	case "disabled":
		return LevelDisabled, true
	case "error":
		return LevelError, true
	case "warn":
		return LevelWarn, true
	case "info":
		return LevelInfo, true
	case "debug":
		return LevelDebug, true
	case "trace":
		return LevelTrace, true
	default:
		return LevelDisabled, false
	}
}

// String provides a human-readable representation of a log level.
func (l Level) String() string {
	switch l {
	case LevelDisabled:
		return "disabled"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}
