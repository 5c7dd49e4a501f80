package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes from concurrent loggers and flushes buffered writers after each write.
type FlushingWriter struct {
	mutex  sync.Mutex
	writer io.Writer
}

// NewFlushingWriter wraps writer unless it is already a FlushingWriter.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if existingWriter, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return existingWriter
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the wrapped writer and flushes it when supported.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}
	if bufferedWriter, supportsFlush := flushingWriter.writer.(flusher); supportsFlush {
		return bytesWritten, bufferedWriter.Flush()
	}
	return bytesWritten, nil
}
