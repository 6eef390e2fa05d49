package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo locates the statement that produced an entry.
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// String returns "file.go:line", or "" when the caller is unknown.
func (c CallerInfo) String() string {
	if !c.Defined {
		return ""
	}
	return c.ShortFile + ":" + strconv.Itoa(c.Line)
}

// GetCaller returns the frame skip levels above its own caller, counted the
// way runtime.Caller counts them. Inlined frames are resolved.
func GetCaller(skip int) CallerInfo {
	var pcs [1]uintptr
	// +1 for runtime.Callers itself.
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
