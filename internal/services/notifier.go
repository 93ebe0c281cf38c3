package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lostfound/internal/logger"
	"lostfound/internal/metrics"
	"lostfound/internal/models"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var ErrNotifierClosed = errors.New("notifier is shut down")

type Notification struct {
	To      string
	Subject string
	Body    string
}

type DeadLetterStore interface {
	Save(ctx context.Context, d *models.DeadLetter) error
}

type NotifierConfig struct {
	Workers     int
	QueueSize   int
	MaxAttempts int
	// Backoff is multiplied by the attempt number between retries.
	Backoff time.Duration
	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration
}

type job struct {
	id  string
	msg Notification
}

// Notifier delivers notifications asynchronously through a bounded queue.
// Each job is retried with linear backoff; exhausted jobs go to the dead
// letter store.
type Notifier struct {
	mailer Mailer
	dead   DeadLetterStore
	cfg    NotifierConfig

	queue    chan job
	stopping chan struct{}
	stopOnce sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewNotifier(mailer Mailer, dead DeadLetterStore, cfg NotifierConfig) *Notifier {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 100
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 30 * time.Second
	}
	return &Notifier{
		mailer:   mailer,
		dead:     dead,
		cfg:      cfg,
		queue:    make(chan job, cfg.QueueSize),
		stopping: make(chan struct{}),
	}
}

// Enqueue queues msg for delivery. It blocks while the queue is full, but
// never past ctx. A message that cannot be queued is dead-lettered.
func (n *Notifier) Enqueue(ctx context.Context, msg Notification) error {
	j := job{id: ulid.Make().String(), msg: msg}

	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		n.deadLetter(j, 0, ErrNotifierClosed)
		return ErrNotifierClosed
	}

	var err error
	select {
	case n.queue <- j:
		metrics.NotifyQueueDepth.Inc()
	case <-ctx.Done():
		err = ctx.Err()
	case <-n.stopping:
		err = ErrNotifierClosed
	}
	n.mu.RUnlock()

	if err != nil {
		n.deadLetter(j, 0, fmt.Errorf("enqueue: %w", err))
		return err
	}
	logger.WithCtx(ctx).Debug("Notification queued", zap.String("job_id", j.id), zap.String("to", msg.To))
	return nil
}

// SendNow delivers msg synchronously, without retries.
func (n *Notifier) SendNow(ctx context.Context, msg Notification) error {
	if err := n.mailer.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %v", ErrDependency, err)
	}
	metrics.Notifications.WithLabelValues("sent").Inc()
	return nil
}

// Run starts the workers and blocks until ctx is done. It then stops
// accepting jobs and returns once the queue is drained.
func (n *Notifier) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < n.cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range n.queue {
				metrics.NotifyQueueDepth.Dec()
				n.deliver(j, worker)
			}
		}(i)
	}

	logger.Log.Info("Notifier started", zap.Int("workers", n.cfg.Workers), zap.Int("queue_size", n.cfg.QueueSize))
	<-ctx.Done()

	n.stop()
	wg.Wait()
	logger.Log.Info("Notifier stopped")
	return nil
}

func (n *Notifier) stop() {
	n.stopOnce.Do(func() {
		close(n.stopping)
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()
	})
}

func (n *Notifier) deliver(j job, worker int) {
	log := logger.Log.With(zap.String("job_id", j.id), zap.String("to", j.msg.To), zap.Int("worker", worker))

	var lastErr error
	for attempt := 1; attempt <= n.cfg.MaxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), n.cfg.SendTimeout)
		lastErr = n.mailer.Send(ctx, j.msg.To, j.msg.Subject, j.msg.Body)
		cancel()

		if lastErr == nil {
			metrics.Notifications.WithLabelValues("sent").Inc()
			log.Info("Notification sent", zap.Int("attempt", attempt))
			return
		}

		log.Warn("Notification attempt failed", zap.Int("attempt", attempt), zap.Error(lastErr))
		if attempt < n.cfg.MaxAttempts {
			metrics.Notifications.WithLabelValues("retry").Inc()
			n.wait(time.Duration(attempt) * n.cfg.Backoff)
		}
	}

	n.deadLetter(j, n.cfg.MaxAttempts, lastErr)
}

// wait sleeps for d, cut short once shutdown begins so the queue drains fast.
func (n *Notifier) wait(d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-n.stopping:
	}
}

func (n *Notifier) deadLetter(j job, attempts int, cause error) {
	metrics.Notifications.WithLabelValues("dead_letter").Inc()

	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	logger.Log.Error("Notification dead-lettered",
		zap.String("job_id", j.id),
		zap.String("to", j.msg.To),
		zap.String("subject", j.msg.Subject),
		zap.Int("attempts", attempts),
		zap.String("last_error", msg),
	)

	if n.dead == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	d := &models.DeadLetter{
		ID:        j.id,
		Recipient: j.msg.To,
		Subject:   j.msg.Subject,
		Body:      j.msg.Body,
		Attempts:  attempts,
		LastError: msg,
		CreatedAt: time.Now().UTC(),
	}
	if err := n.dead.Save(ctx, d); err != nil {
		logger.Log.Error("Dead letter not persisted", zap.String("job_id", j.id), zap.Error(err))
	}
}
