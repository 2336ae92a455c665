package ocr

import (
	"context"
	"fmt"
	"image"
	"sync"
)

// Worker is the OCR handle shared by all pages of an extraction run.
//
// The engine is created either eagerly in the background (StartWorker) or on
// first use (NewWorker). Callers that need the engine wait for a pending
// creation instead of racing it. A Worker must be closed exactly when its
// owner is done with it; Close is safe whether or not the engine was ever
// created and may be called more than once.
//
// Recognize must not be called concurrently. The extractor guarantees this by
// processing pages one after another; the mutex below only guards the
// create/close lifecycle.
//
// All methods are safe on a nil *Worker, which behaves as an unavailable
// engine.
type Worker struct {
	factory Factory

	mu      sync.Mutex
	started bool
	closed  bool
	done    chan struct{} // closed once creation has finished
	engine  Engine
	err     error
}

// NewWorker returns a worker that creates its engine on first use.
func NewWorker(factory Factory) *Worker {
	return &Worker{factory: factory, done: make(chan struct{})}
}

// StartWorker returns a worker whose engine is already being created in the
// background.
func StartWorker(ctx context.Context, factory Factory) *Worker {
	w := NewWorker(factory)
	w.start(ctx)
	return w
}

func (w *Worker) start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	if w.closed {
		w.err = ErrClosed
		w.mu.Unlock()
		close(w.done)
		return
	}
	w.mu.Unlock()

	go func() {
		var engine Engine
		var err error
		if w.factory == nil {
			err = fmt.Errorf("no OCR engine configured")
		} else {
			engine, err = w.factory(ctx)
		}

		w.mu.Lock()
		switch {
		case err != nil:
			w.err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		case w.closed:
			// Closed while creating: release straight away
			_ = engine.Close()
			w.err = ErrClosed
		default:
			w.engine = engine
		}
		w.mu.Unlock()
		close(w.done)
	}()
}

// Ready waits until the engine exists, creating it if nobody has yet. It
// returns an error wrapping ErrUnavailable when creation failed, ErrClosed
// after Close, or ctx's error if ctx ends first.
func (w *Worker) Ready(ctx context.Context) error {
	if w == nil {
		return fmt.Errorf("%w: no worker", ErrUnavailable)
	}
	w.start(context.WithoutCancel(ctx))

	select {
	case <-w.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.err
}

// Recognize runs the engine on img once it is ready.
func (w *Worker) Recognize(ctx context.Context, img image.Image) (Result, error) {
	if err := w.Ready(ctx); err != nil {
		return Result{}, err
	}
	w.mu.Lock()
	engine := w.engine
	w.mu.Unlock()
	if engine == nil {
		return Result{}, ErrClosed
	}
	return engine.Recognize(ctx, img)
}

// Close terminates the engine. It waits for a pending creation so that an
// engine is never left half-initialised.
func (w *Worker) Close() error {
	if w == nil {
		return nil
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	started := w.started
	w.mu.Unlock()

	if !started {
		return nil
	}
	<-w.done

	w.mu.Lock()
	engine := w.engine
	w.engine = nil
	w.mu.Unlock()

	if engine != nil {
		if err := engine.Close(); err != nil {
			return fmt.Errorf("failed to close OCR engine: %w", err)
		}
	}
	return nil
}
