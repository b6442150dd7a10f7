package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultQueueSize     = 1000
	defaultFlushInterval = 2 * time.Second
)

// AsyncFileWriter queues log lines and writes them from a single goroutine.
// A full queue drops the line rather than blocking the request path.
type AsyncFileWriter struct {
	file     *os.File
	writer   *bufio.Writer
	lines    chan []byte
	done     chan struct{}
	interval time.Duration
	dropped  atomic.Uint64

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewAsyncFileWriter(logFile string, bufferSize int) (*AsyncFileWriter, error) {
	return newAsyncFileWriter(logFile, bufferSize, defaultQueueSize, defaultFlushInterval)
}

func newAsyncFileWriter(logFile string, bufferSize, queueSize int, interval time.Duration) (*AsyncFileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	w := &AsyncFileWriter{
		file:     file,
		writer:   bufio.NewWriterSize(file, bufferSize),
		lines:    make(chan []byte, queueSize),
		done:     make(chan struct{}),
		interval: interval,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *AsyncFileWriter) Write(p []byte) (int, error) {
	select {
	case w.lines <- append([]byte(nil), p...):
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped is the number of lines discarded because the queue was full.
func (w *AsyncFileWriter) Dropped() uint64 {
	return w.dropped.Load()
}

func (w *AsyncFileWriter) loop() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case line := <-w.lines:
			if _, err := w.writer.Write(line); err != nil {
				fmt.Fprintln(os.Stderr, "log file write failed:", err)
			}
		case <-ticker.C:
			_ = w.writer.Flush()
		case <-w.done:
			for {
				select {
				case line := <-w.lines:
					_, _ = w.writer.Write(line)
				default:
					_ = w.writer.Flush()
					return
				}
			}
		}
	}
}

// Close drains queued lines, flushes and closes the file. Safe to call twice.
func (w *AsyncFileWriter) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		_ = w.file.Close()
	})
}
