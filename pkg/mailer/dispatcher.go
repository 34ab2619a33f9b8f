package mailer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("mailer: queue full")
	ErrStopped   = errors.New("mailer: dispatcher stopped")
)

type DispatcherOptions struct {
	Workers   int
	QueueSize int
	Retries   int           // extra attempts after the first
	BaseDelay time.Duration // backoff before retry n is BaseDelay << n
}

// Dispatcher sends mails on background workers so requests never wait on SMTP.
type Dispatcher struct {
	transport Transport
	opts      DispatcherOptions
	queue     chan Message

	mu      sync.RWMutex
	stopped bool

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewDispatcher(t Transport, opts DispatcherOptions) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		transport: t,
		opts:      opts,
		queue:     make(chan Message, opts.QueueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
}

// Enqueue never blocks.
func (d *Dispatcher) Enqueue(m Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- m:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new mail and waits for the queue to drain. If ctx ends first,
// pending retries are abandoned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for m := range d.queue {
		d.deliver(id, m)
	}
}

func (d *Dispatcher) deliver(worker int, m Message) {
	var err error
	for attempt := 0; attempt <= d.opts.Retries; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(d.opts.BaseDelay << (attempt - 1))
			select {
			case <-t.C:
			case <-d.ctx.Done():
				t.Stop()
				slog.Warn("mail dropped on shutdown", "subject", m.Subject, "error", err)
				return
			}
		}
		if err = d.transport.Send(d.ctx, m); err == nil {
			return
		}
		slog.Warn("mail attempt failed",
			"worker", worker,
			"attempt", attempt+1,
			"subject", m.Subject,
			"error", err,
		)
	}
	slog.Error("mail gave up", "subject", m.Subject, "attempts", d.opts.Retries+1, "error", err)
}
