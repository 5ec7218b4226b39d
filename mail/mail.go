// Package mail delivers contact form messages. Providers are interchangeable
// behind Sender: Simulated stands in for delivery, SMTP really sends.
package mail

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/timing"
)

// Message is one contact form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Sender delivers a message, blocking until it succeeds or fails.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// SimulatedDelay is how long Simulated pretends delivery takes.
const SimulatedDelay = 2 * time.Second

// Simulated waits for Delay and then reports success. Nothing is delivered.
type Simulated struct {
	Delay     time.Duration
	Scheduler timing.Scheduler
}

// NewSimulated returns a Simulated sender with the standard delay on real timers.
func NewSimulated() *Simulated {
	return &Simulated{Delay: SimulatedDelay, Scheduler: timing.Real}
}

func (s *Simulated) Send(ctx context.Context, msg Message) error {
	sched := s.Scheduler
	if sched == nil {
		sched = timing.Real
	}

	done := make(chan struct{})
	timer := sched.AfterFunc(s.Delay, func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return errors.Wrap(ctx.Err(), "simulated send")
	}
}
