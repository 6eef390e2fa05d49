package core

import (
	"sync"
	"time"
)

// Entry is one log record on its way to the handlers. Entries come from a
// pool; handlers must not keep them after Handle returns.
type Entry struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
	Fields  []Field
	Caller  CallerInfo
	// Stack is the trace attached by Exception, nil for plain entries.
	Stack []byte
}

// HasStack reports whether the entry carries an exception trace.
func (e *Entry) HasStack() bool {
	return len(e.Stack) > 0
}

func (e *Entry) reset() {
	e.Time = time.Time{}
	e.Level = InfoLevel
	e.Logger = ""
	e.Message = ""
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	e.Stack = nil
}

const initialFields = 8

var entries = sync.Pool{
	New: func() any {
		return &Entry{Fields: make([]Field, 0, initialFields)}
	},
}

// GetEntry takes a cleared entry from the pool, stamped with the current time.
func GetEntry() *Entry {
	e := entries.Get().(*Entry)
	e.reset()
	e.Time = time.Now()
	return e
}

// PutEntry clears e and returns it to the pool. A nil entry is ignored.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.reset()
	entries.Put(e)
}
