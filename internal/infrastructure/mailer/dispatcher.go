package mailer

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

var (
	ErrClosed    = errors.New("mail dispatcher closed")
	ErrQueueFull = errors.New("mail queue full")
)

type Message struct {
	To      string
	Name    string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Dispatcher fans messages out to a fixed number of workers. All workers
// share one limiter, so the total send rate never exceeds the configured
// messages per second.
type Dispatcher struct {
	sender  Sender
	workers int
	limiter *rate.Limiter
	logger  *log.Logger

	tasks chan Message
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	sent   atomic.Int64
	failed atomic.Int64
}

func NewDispatcher(sender Sender, workers int, perSecond float64, logger *log.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Dispatcher{
		sender:  sender,
		workers: workers,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
		tasks:   make(chan Message, workers*64),
	}
}

// Start launches the workers. They stop when ctx is done or after Close
// once the queue is drained.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func() {
			defer d.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case m, ok := <-d.tasks:
					if !ok {
						return
					}
					if err := d.limiter.Wait(ctx); err != nil {
						return
					}
					if err := d.sender.Send(ctx, m); err != nil {
						d.failed.Add(1)
						d.logger.Printf("[Mailer] send failed to=%s: %v", m.To, err)
						continue
					}
					d.sent.Add(1)
				}
			}
		}()
	}
}

// Enqueue queues msgs without waiting for room and returns how many were
// accepted. It stops at the first message that does not fit and reports
// ErrQueueFull along with the accepted count.
func (d *Dispatcher) Enqueue(ctx context.Context, msgs []Message) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return 0, ErrClosed
	}

	for i, m := range msgs {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		select {
		case d.tasks <- m:
		default:
			return i, ErrQueueFull
		}
	}
	return len(msgs), nil
}

// Close stops accepting messages and waits for queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) Sent() int64   { return d.sent.Load() }
func (d *Dispatcher) Failed() int64 { return d.failed.Load() }
