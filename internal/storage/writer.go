package storage

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

// ErrWriterClosed is returned when a write is queued after Close.
var ErrWriterClosed = errors.New("storage: writer closed")

// ErrQueueFull is returned when the write queue has no room.
var ErrQueueFull = errors.New("storage: write queue full")

type writeJob struct {
	name string
	run  func(*Store) error
}

// Writer applies store writes on a background goroutine so the frame loop
// never waits on disk. It implements runner.ScoreKeeper and runner.Observer.
type Writer struct {
	store  *Store
	jobs   chan writeJob
	done   chan struct{}
	logger *log.Logger

	mu     sync.Mutex
	closed bool
}

var (
	_ runner.ScoreKeeper = (*Writer)(nil)
	_ runner.Observer    = (*Writer)(nil)
)

// NewWriter starts a writer with room for queue pending writes.
func NewWriter(store *Store, queue int, logger *log.Logger) *Writer {
	if queue <= 0 {
		queue = 64
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &Writer{
		store:  store,
		jobs:   make(chan writeJob, queue),
		done:   make(chan struct{}),
		logger: logger,
	}
	go w.process()
	return w
}

// process runs queued writes until the queue is closed and drained.
func (w *Writer) process() {
	defer close(w.done)
	for job := range w.jobs {
		if err := job.run(w.store); err != nil {
			w.logger.Warn("score write failed", "op", job.name, "err", err)
		}
	}
}

// enqueue never blocks; a full queue drops the write.
func (w *Writer) enqueue(job writeJob) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}
	select {
	case w.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// LoadHighScore reads the stored best score synchronously.
func (w *Writer) LoadHighScore() (int, error) {
	return w.store.LoadHighScore()
}

// SaveHighScore queues a high score update.
func (w *Writer) SaveHighScore(score int) error {
	return w.enqueue(writeJob{name: "high score", run: func(s *Store) error {
		return s.SaveHighScore(score)
	}})
}

// SessionChanged records every finished run.
func (w *Writer) SessionChanged(sum runner.Summary) {
	if sum.To != runner.StateGameOver {
		return
	}
	rec := RunRecord{
		Avatar:   sum.Avatar.String(),
		Score:    sum.Score,
		Duration: time.Duration(sum.Elapsed * float64(time.Second)),
	}
	err := w.enqueue(writeJob{name: "record run", run: func(s *Store) error {
		_, err := s.RecordRun(rec)
		return err
	}})
	if err != nil {
		w.logger.Warn("run not recorded", "score", rec.Score, "err", err)
	}
}

// Close stops accepting writes and waits for queued ones to finish.
func (w *Writer) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()
	<-w.done
}
