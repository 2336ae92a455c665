package ocr

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	text   string
	closed atomic.Int32
	calls  atomic.Int32
}

func (f *fakeEngine) Recognize(ctx context.Context, img image.Image) (Result, error) {
	f.calls.Add(1)
	return Result{Text: f.text, Confidence: 90, Engine: "fake"}, nil
}

func (f *fakeEngine) Close() error {
	f.closed.Add(1)
	return nil
}

func countingFactory(engine *fakeEngine, created *atomic.Int32) Factory {
	return func(ctx context.Context) (Engine, error) {
		created.Add(1)
		return engine, nil
	}
}

func TestWorkerLazyCreation(t *testing.T) {
	engine := &fakeEngine{text: "hello"}
	var created atomic.Int32
	w := NewWorker(countingFactory(engine, &created))

	assert.Equal(t, int32(0), created.Load())

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	res, err := w.Recognize(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Text)

	_, err = w.Recognize(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(2), engine.calls.Load())

	require.NoError(t, w.Close())
	assert.Equal(t, int32(1), engine.closed.Load())
}

func TestWorkerStartedEagerly(t *testing.T) {
	engine := &fakeEngine{}
	var created atomic.Int32
	w := StartWorker(context.Background(), countingFactory(engine, &created))
	require.NoError(t, w.Ready(context.Background()))
	assert.Equal(t, int32(1), created.Load())
	require.NoError(t, w.Close())
}

func TestWorkerCreationFailure(t *testing.T) {
	boom := errors.New("no language data")
	w := NewWorker(func(ctx context.Context) (Engine, error) {
		return nil, boom
	})

	err := w.Ready(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no language data")

	_, err = w.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, w.Close())
}

func TestWorkerCloseIdempotent(t *testing.T) {
	engine := &fakeEngine{}
	var created atomic.Int32
	w := NewWorker(countingFactory(engine, &created))
	require.NoError(t, w.Ready(context.Background()))

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Equal(t, int32(1), engine.closed.Load())

	assert.ErrorIs(t, w.Ready(context.Background()), ErrClosed)
}

func TestWorkerCloseNeverStarted(t *testing.T) {
	var created atomic.Int32
	w := NewWorker(countingFactory(&fakeEngine{}, &created))
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Ready(context.Background()), ErrClosed)
	assert.Equal(t, int32(0), created.Load())
}

func TestWorkerCloseDuringCreation(t *testing.T) {
	engine := &fakeEngine{}
	release := make(chan struct{})
	w := StartWorker(context.Background(), func(ctx context.Context) (Engine, error) {
		<-release
		return engine, nil
	})

	closed := make(chan error, 1)
	go func() { closed <- w.Close() }()

	// Close must wait for the pending creation.
	select {
	case <-closed:
		t.Fatal("Close returned before creation finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-closed)
	assert.Equal(t, int32(1), engine.closed.Load())
}

func TestWorkerReadyHonoursContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	w := NewWorker(func(ctx context.Context) (Engine, error) {
		<-release
		return &fakeEngine{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Ready(ctx), context.Canceled)
}

func TestWorkerRecognizeAfterEngineReleased(t *testing.T) {
	// Creation finished and Close has already taken the engine.
	w := &Worker{started: true, done: make(chan struct{})}
	close(w.done)

	_, err := w.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestNilWorker(t *testing.T) {
	var w *Worker
	assert.ErrorIs(t, w.Ready(context.Background()), ErrUnavailable)
	assert.NoError(t, w.Close())
}

func TestNeedsOCR(t *testing.T) {
	tests := []struct {
		name      string
		native    string
		threshold int
		want      bool
	}{
		{"empty", "", DefaultWordThreshold, true},
		{"whitespace", "  \n\t ", DefaultWordThreshold, true},
		{"few words", "Chapter 1 Introduction", DefaultWordThreshold, true},
		{"at threshold", repeatWords(50), 50, false},
		{"below threshold", repeatWords(49), 50, true},
		{"zero threshold never", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsOCR(tt.native, tt.threshold))
		})
	}
}

func repeatWords(n int) string {
	b := make([]byte, 0, n*5)
	for i := 0; i < n; i++ {
		b = append(b, "word "...)
	}
	return string(b)
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodePNG(image.NewGray(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))

	_, err = EncodePNG(nil)
	assert.Error(t, err)
}
