package storage

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type pendingWrite struct {
	value  []byte
	delete bool
	seq    uint64
}

// AsyncWriter makes writes fire-and-forget. Writes to the same key are
// coalesced so only the latest value reaches the backend. Failures are
// logged and dropped. Reads see pending writes.
type AsyncWriter struct {
	backend Backend

	mu      sync.Mutex
	pending map[string]pendingWrite
	order   []string
	seq     uint64
	closed  bool

	wake    chan struct{}
	flushes chan chan struct{}
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewAsyncWriter(backend Backend) *AsyncWriter {
	w := &AsyncWriter{
		backend: backend,
		pending: make(map[string]pendingWrite),
		wake:    make(chan struct{}, 1),
		flushes: make(chan chan struct{}),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *AsyncWriter) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case ack := <-w.flushes:
			w.drain()
			close(ack)
		case <-w.quit:
			w.drain()
			return
		}
	}
}

func (w *AsyncWriter) drain() {
	for {
		w.mu.Lock()
		if len(w.order) == 0 {
			w.mu.Unlock()
			return
		}
		key := w.order[0]
		w.order = w.order[1:]
		op := w.pending[key]
		w.mu.Unlock()

		w.apply(key, op)

		// The entry stays visible to Get until the backend has it. A write
		// that replaced it meanwhile is queued again.
		w.mu.Lock()
		if w.pending[key].seq == op.seq {
			delete(w.pending, key)
		} else {
			w.order = append(w.order, key)
		}
		w.mu.Unlock()
	}
}

func (w *AsyncWriter) apply(key string, op pendingWrite) {
	var err error
	if op.delete {
		err = w.backend.Delete(key)
	} else {
		err = w.backend.Put(key, op.value)
	}
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Dropped storage write")
	}
}

func (w *AsyncWriter) enqueue(key string, op pendingWrite) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.apply(key, op)
		return
	}
	if _, queued := w.pending[key]; !queued {
		w.order = append(w.order, key)
	}
	w.seq++
	op.seq = w.seq
	w.pending[key] = op
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *AsyncWriter) Get(key string) ([]byte, error) {
	w.mu.Lock()
	op, queued := w.pending[key]
	w.mu.Unlock()

	if queued {
		if op.delete {
			return nil, ErrNotFound
		}
		return append([]byte(nil), op.value...), nil
	}
	return w.backend.Get(key)
}

// Put never blocks on the backend and never reports its failure
func (w *AsyncWriter) Put(key string, value []byte) error {
	w.enqueue(key, pendingWrite{value: append([]byte(nil), value...)})
	return nil
}

func (w *AsyncWriter) Delete(key string) error {
	w.enqueue(key, pendingWrite{delete: true})
	return nil
}

// Flush waits until every queued write has been applied
func (w *AsyncWriter) Flush() {
	ack := make(chan struct{})
	select {
	case w.flushes <- ack:
		<-ack
	case <-w.done:
	}
}

// Close drains pending writes and closes the backend
func (w *AsyncWriter) Close() error {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.quit)
	})
	<-w.done
	return w.backend.Close()
}
