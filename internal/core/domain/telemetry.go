package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// SessionStatus is the outcome of one save, load or diff session as reported to telemetry.
type SessionStatus string

const (
	// SessionStatusCompleted indicates the session finished and its result was used.
	SessionStatusCompleted SessionStatus = "completed"
	// SessionStatusUnchanged indicates a save session produced the same records as the stored save.
	SessionStatusUnchanged SessionStatus = "unchanged"
	// SessionStatusFailed indicates the session was discarded.
	SessionStatusFailed SessionStatus = "failed"
)
