// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/aura/internal/adapter"
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

const deliveryTimeout = 30 * time.Second

type mailJob struct {
	ctx context.Context
	msg models.MailMessage
}

// MailDispatcher delivers mail on a fixed number of goroutines reading from
// a bounded queue. Messages are never retried; a full queue drops the new
// message.
type MailDispatcher struct {
	mailer  adapter.Mailer
	queue   chan mailJob
	workers int
	timeout time.Duration

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewMailDispatcher(mailer adapter.Mailer, cfg config.Workers, logger *logger.Logger) *MailDispatcher {
	size := cfg.MailQueueSize
	if size <= 0 {
		size = 1
	}
	n := cfg.MailWorkers
	if n <= 0 {
		n = 1
	}

	return &MailDispatcher{
		mailer:  mailer,
		queue:   make(chan mailJob, size),
		workers: n,
		timeout: deliveryTimeout,
		logger:  logger,
	}
}

// Run starts the sender goroutines. Calling it twice has no effect.
func (d *MailDispatcher) Run() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.closed {
		return
	}
	d.started = true

	for range d.workers {
		d.wg.Add(1)
		go d.loop()
	}
	d.logger.Info().Int("workers", d.workers).Int("queue", cap(d.queue)).Msg("mail dispatcher started")
}

func (d *MailDispatcher) loop() {
	defer d.wg.Done()

	for job := range d.queue {
		d.deliver(job)
	}
}

func (d *MailDispatcher) deliver(job mailJob) {
	ctx, cancel := context.WithTimeout(job.ctx, d.timeout)
	defer cancel()

	if err := d.mailer.Send(ctx, job.msg); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MailDispatcher.deliver").Str("subject", job.msg.Subject).Msg("mail was not delivered")
	}
}

// Enqueue implements [MailQueue]. The request's values (logger, trace id)
// travel with the message, its cancellation does not.
func (d *MailDispatcher) Enqueue(ctx context.Context, msg models.MailMessage) bool {
	log := logger.FromContext(ctx)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Warn().Str("func", "*MailDispatcher.Enqueue").Msg("mail dispatcher is shut down, dropping message")
		return false
	}

	select {
	case d.queue <- mailJob{ctx: context.WithoutCancel(ctx), msg: msg}:
		return true
	default:
		log.Warn().Str("func", "*MailDispatcher.Enqueue").Str("subject", msg.Subject).Msg("mail queue is full, dropping message")
		return false
	}
}

// Shutdown closes the queue and waits until queued mail has been handed to
// the mailer or ctx expires.
func (d *MailDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
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
		d.logger.Info().Msg("mail dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
