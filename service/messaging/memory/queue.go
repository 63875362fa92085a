package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/viant/ossim/internal/idgen"
	"github.com/viant/ossim/service/messaging"
)

// Config for memory queue implementation
type Config struct {
	MaxRetries int
	DeadLetter bool
	// Capacity bounds pending messages; 0 means unbounded. Publishing to a
	// full queue fails instead of blocking the publisher.
	Capacity int
}

// DefaultConfig returns a standard configuration for memory queue
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		DeadLetter: true,
	}
}

// ErrQueueFull is returned by Publish when Capacity is reached
var ErrQueueFull = fmt.Errorf("memory queue: capacity reached")

// Message implements messaging.Message for in-memory queue
type Message[T any] struct {
	id         string
	payload    T
	queue      *Queue[T]
	retryCount int
	mu         sync.Mutex
	processed  bool
	createdAt  time.Time
}

// ID returns message id
func (m *Message[T]) ID() string {
	return m.id
}

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	return nil
}

// Nack indicates a failure in processing the message; it is requeued at the
// tail until MaxRetries is exceeded.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message %v already processed", m.id)
	}
	m.processed = true
	m.retryCount++
	if m.retryCount <= m.queue.config.MaxRetries {
		m.queue.push(&Message[T]{
			id:         m.id,
			payload:    m.payload,
			queue:      m.queue,
			retryCount: m.retryCount,
			createdAt:  time.Now(),
		})
		return nil
	}
	if m.queue.config.DeadLetter {
		m.queue.mu.Lock()
		m.queue.dlq = append(m.queue.dlq, m)
		m.queue.mu.Unlock()
	}
	return nil
}

// Queue implements an in-memory, FIFO messaging.Queue
type Queue[T any] struct {
	messages []*Message[T]
	dlq      []*Message[T]
	config   Config
	notify   chan struct{}
	mu       sync.Mutex
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	return &Queue[T]{
		config: config,
		notify: make(chan struct{}, 1),
	}
}

func (q *Queue[T]) push(msg *Message[T]) {
	q.mu.Lock()
	q.messages = append(q.messages, msg)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Publish adds a new item to the queue; it never blocks.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.config.Capacity > 0 && q.Size() >= q.config.Capacity {
		return ErrQueueFull
	}
	q.push(&Message[T]{
		id:        idgen.New(),
		payload:   *t,
		queue:     q,
		createdAt: time.Now(),
	})
	return nil
}

func (q *Queue[T]) pop() *Message[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.messages) == 0 {
		return nil
	}
	msg := q.messages[0]
	q.messages[0] = nil
	q.messages = q.messages[1:]
	return msg
}

// Consume retrieves the oldest message, waiting until one is published or
// ctx is done.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	for {
		if msg := q.pop(); msg != nil {
			return msg, nil
		}
		select {
		case <-q.notify:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Drain removes and returns all pending payloads in publication order.
func (q *Queue[T]) Drain() []*T {
	q.mu.Lock()
	defer q.mu.Unlock()
	ret := make([]*T, 0, len(q.messages))
	for _, msg := range q.messages {
		ret = append(ret, msg.T())
	}
	q.messages = nil
	return ret
}

// Size returns the current number of messages in the queue
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// DLQSize returns the number of messages in the dead letter queue
func (q *Queue[T]) DLQSize() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.dlq)
}

// ensure Queue implements messaging.Queue interface
var _ messaging.Queue[any] = (*Queue[any])(nil)
