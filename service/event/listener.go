package event

import (
	"context"
	"errors"
	"sync"
)

type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	onError   func(error)
	ctx       context.Context
	cancel    context.CancelFunc
	done      sync.WaitGroup
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T]), onError func(error)) *Listener[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
		onError:   onError,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Stop cancels the consuming loop and waits for it to return.
func (l *Listener[T]) Stop() {
	l.cancel()
	l.done.Wait()
}

func (l *Listener[T]) Start() {
	l.done.Add(1)
	go func() {
		defer l.done.Done()
		for {
			event, err := l.publisher.Consume(l.ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if l.onError != nil {
					l.onError(err)
				}
				continue
			}
			if event != nil {
				l.handler(event)
			}
		}
	}()
}
