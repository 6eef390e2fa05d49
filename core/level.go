package core

// Level is the severity of an entry. Higher values are more severe.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	// ErrorLevel is the level exceptions are logged at and the default
	// minimum of the mail handler.
	ErrorLevel
	// FatalLevel entries are followed by os.Exit(1).
	FatalLevel
	// PanicLevel entries are followed by a panic.
	PanicLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	PanicLevel: "PANIC",
}

// String returns the upper-case level name, or UNKNOWN.
func (l Level) String() string {
	if l < DebugLevel || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// AtLeast reports whether l is min or more severe.
func (l Level) AtLeast(min Level) bool {
	return l >= min
}
