package utils_test

import (
	"bufio"
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitfacade/internal/utils"
)

func TestFlushingWriterFlushesBufferedWriter(testInstance *testing.T) {
	var destination bytes.Buffer
	bufferedWriter := bufio.NewWriterSize(&destination, 4096)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	bytesWritten, writeError := flushingWriter.Write([]byte("Pushing feature/login to origin\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 32, bytesWritten)
	require.Equal(testInstance, "Pushing feature/login to origin\n", destination.String())
}

func TestFlushingWriterDoesNotWrapTwice(testInstance *testing.T) {
	var destination bytes.Buffer
	flushingWriter := utils.NewFlushingWriter(&destination)
	require.Same(testInstance, flushingWriter, utils.NewFlushingWriter(flushingWriter))
}

func TestFlushingWriterSerializesConcurrentWrites(testInstance *testing.T) {
	var destination bytes.Buffer
	flushingWriter := utils.NewFlushingWriter(&destination)

	const writerCount = 50
	var waitGroup sync.WaitGroup
	for writerIndex := 0; writerIndex < writerCount; writerIndex++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			_, _ = flushingWriter.Write([]byte("line\n"))
		}()
	}
	waitGroup.Wait()

	require.Equal(testInstance, writerCount*len("line\n"), destination.Len())
}
