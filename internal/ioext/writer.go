// Package ioext provides extensions to standard io interfaces used by the
// bit-packing codec.
package ioext

import "io"

// OffsetTrackingWriter is an io.Writer wrapper which keeps track of the
// number of bytes that have been written.
type OffsetTrackingWriter struct {
	writer io.Writer
	offset int64
}

func (w *OffsetTrackingWriter) Writer() io.Writer {
	return w.writer
}

func (w *OffsetTrackingWriter) Offset() int64 {
	return w.offset
}

func (w *OffsetTrackingWriter) Reset(writer io.Writer) {
	w.writer = writer
	w.offset = 0
}

func (w *OffsetTrackingWriter) Write(b []byte) (int, error) {
	n, err := w.writer.Write(b)
	w.offset += int64(n)
	return n, err
}
