package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/hut8labs/failmail-client/core"
)

// Formatter renders an entry into a new byte slice.
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter renders an entry straight into w. The console handler uses
// it in place of Format when a formatter provides it.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config selects what a TextFormatter writes.
type Config struct {
	// IncludeCaller writes [file:line] before the message.
	IncludeCaller bool
	// TimestampFormat is a time layout; RFC3339 when empty.
	TimestampFormat string
	// OmitStack leaves the traceback out.
	OmitStack bool
}

const (
	initialBufferSize = 256
	maxPooledBuffer   = 64 << 10
)

// bufferPool recycles render buffers, dropping ones that grew past
// maxPooledBuffer so one huge trace does not pin memory.
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	bp := &bufferPool{}
	bp.pool.New = func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	}
	return bp
}

func (bp *bufferPool) get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (bp *bufferPool) put(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bp.pool.Put(buf)
}

var buffers = newBufferPool()
