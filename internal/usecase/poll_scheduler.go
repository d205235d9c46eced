package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/tiagoh/esoccer-tracker/internal/platform/logging"
)

// SchedulerState is the lifecycle of the poll loop. Stopped is terminal; a
// stopped scheduler is never restarted, a new one is built instead.
type SchedulerState int32

const (
	SchedulerIdle SchedulerState = iota
	SchedulerRunning
	SchedulerStopped
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerIdle:
		return "idle"
	case SchedulerRunning:
		return "running"
	case SchedulerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PollScheduler drives the scan service on a fixed interval, stretching the
// wait after a failed cycle so a dead upstream is not hammered.
type PollScheduler struct {
	scan     *ScanService
	interval time.Duration
	notifier Notifier
	alertTo  string
	logger   *logging.Logger

	mu       sync.Mutex
	state    SchedulerState
	stopOnce sync.Once
	stopCh   chan struct{}
}

func NewPollScheduler(scan *ScanService, interval time.Duration, notifier Notifier, alertTo string, logger *logging.Logger) *PollScheduler {
	if logger == nil {
		logger = logging.Default()
	}

	return &PollScheduler{
		scan:     scan,
		interval: interval,
		notifier: notifier,
		alertTo:  alertTo,
		logger:   logger,
		state:    SchedulerIdle,
		stopCh:   make(chan struct{}),
	}
}

func (p *PollScheduler) State() SchedulerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run executes scan cycles until the context is cancelled or Stop is called.
// A cycle in flight always completes; cancellation is only observed between
// cycles, so a half-written reconciliation pass is never abandoned.
func (p *PollScheduler) Run(ctx context.Context) {
	p.mu.Lock()
	if p.state != SchedulerIdle {
		p.mu.Unlock()
		return
	}
	p.state = SchedulerRunning
	p.mu.Unlock()

	p.logger.Info("poll scheduler started", "interval", p.interval.String())
	defer p.markStopped()

	for {
		wait := p.interval
		if _, err := p.scan.RunCycle(ctx); err != nil {
			wait = backoffInterval(p.interval)
			p.logger.ErrorContext(ctx, "scan cycle failed",
				"error", err,
				"retry_in", wait.String(),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-time.After(wait):
		}
	}
}

// Stop ends the loop after the current cycle and sends a best-effort
// shutdown notification. Safe to call more than once and from any goroutine.
func (p *PollScheduler) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		if p.notifier != nil && p.alertTo != "" {
			err := p.notifier.Send(context.Background(), p.alertTo, "", "tracker stopped", "the match poll scheduler was stopped")
			if err != nil {
				p.logger.Warn("failed to send shutdown notification", "error", err)
			}
		}
	})
}

func (p *PollScheduler) markStopped() {
	p.mu.Lock()
	p.state = SchedulerStopped
	p.mu.Unlock()
	p.logger.Info("poll scheduler stopped")
}

// backoffInterval stretches the wait after a failed cycle: double the normal
// interval, but never less than a minute.
func backoffInterval(base time.Duration) time.Duration {
	doubled := 2 * base
	if doubled < time.Minute {
		return time.Minute
	}
	return doubled
}
