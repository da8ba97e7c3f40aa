package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/metrics"
	"github.com/carlosceballos0427/mi-pagina-portafolio/internal/models"
)

// DefaultResetDelay is how long the success view stays up before the flow
// returns to idle and the modal closes.
const DefaultResetDelay = 3000 * time.Millisecond

// Sender delivers one contact submission.
type Sender interface {
	Send(ctx context.Context, input models.ContactInput) error
}

// Notice identifies a user-facing failure message.
type Notice string

const (
	// NoticeRejected asks the user to try again after the endpoint refused.
	NoticeRejected Notice = "contact.notice.rejected"
	// NoticeConnectivity tells the user the endpoint could not be reached.
	NoticeConnectivity Notice = "contact.notice.connectivity"
)

// Notifier shows a failure notice to the user.
type Notifier interface {
	Notify(notice Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

// Notify calls f(notice).
func (f NotifierFunc) Notify(notice Notice) { f(notice) }

// Observer is called after every status transition, outside the flow lock.
type Observer func(from, to models.Status)

// Timer is a pending deferred action.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Timer

// AfterFunc schedules with time.AfterFunc.
func AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Flow.
type Option func(*Flow)

// WithResetDelay overrides DefaultResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(f *Flow) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

// WithScheduler replaces time.AfterFunc, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(f *Flow) {
		if s != nil {
			f.schedule = s
		}
	}
}

// WithNotifier sets the receiver of failure notices.
func WithNotifier(n Notifier) Option {
	return func(f *Flow) { f.notifier = n }
}

// WithObserver sets the transition observer.
func WithObserver(o Observer) Option {
	return func(f *Flow) { f.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

// Snapshot is a consistent view of a flow.
type Snapshot struct {
	Open   bool          `json:"open"`
	Status models.Status `json:"status"`
}

// Flow is the contact modal state of one visitor: whether the modal is open
// and where the current submission stands.
//
// The success reset is tied to a generation counter. A timer only applies
// if no newer cycle started and the flow was not stopped, and it only
// closes the modal if the modal was not reopened since the success.
type Flow struct {
	sender     Sender
	notifier   Notifier
	observer   Observer
	schedule   Scheduler
	resetDelay time.Duration
	logger     *zap.Logger

	mu         sync.Mutex
	open       bool
	openEpoch  uint64
	status     models.Status
	generation uint64
	pending    Timer
	stopped    bool
}

type transition struct {
	from, to models.Status
}

// NewFlow creates an idle, closed flow.
func NewFlow(sender Sender, opts ...Option) *Flow {
	f := &Flow{
		sender:     sender,
		schedule:   AfterFunc,
		resetDelay: DefaultResetDelay,
		logger:     zap.NewNop(),
		status:     models.StatusIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open shows the modal.
func (f *Flow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		f.open = true
		f.openEpoch++
	}
}

// Close hides the modal. It neither aborts a sending request nor changes
// the status.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}

// IsOpen reports whether the modal is shown.
func (f *Flow) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Status returns the current submission status.
func (f *Flow) Status() models.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Snapshot returns open state and status together.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Open: f.open, Status: f.status}
}

// ResetDelay returns how long the success view stays up.
func (f *Flow) ResetDelay() time.Duration {
	return f.resetDelay
}

// Submit validates input, moves to sending and performs exactly one send.
// On success the flow moves to success and schedules one reset. On failure
// it returns to idle and emits exactly one notice.
func (f *Flow) Submit(ctx context.Context, input models.ContactInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return ErrStopped
	}
	switch f.status {
	case models.StatusSending:
		f.mu.Unlock()
		return ErrSubmitInProgress
	case models.StatusSuccess:
		f.mu.Unlock()
		return ErrNotIdle
	}
	t := f.setStatusLocked(models.StatusSending)
	f.generation++
	gen := f.generation
	f.mu.Unlock()
	f.observe(t)

	err := f.sender.Send(ctx, input.Normalize())

	if err == nil {
		f.mu.Lock()
		t = f.setStatusLocked(models.StatusSuccess)
		if !f.stopped && f.generation == gen {
			epoch := f.openEpoch
			f.pending = f.schedule(f.resetDelay, func() { f.reset(gen, epoch) })
		}
		f.mu.Unlock()
		f.observe(t)
		f.logger.Debug("contact submission succeeded", zap.Duration("reset_in", f.resetDelay))
		return nil
	}

	notice := NoticeConnectivity
	if errors.Is(err, ErrRejected) {
		notice = NoticeRejected
	} else if !errors.Is(err, ErrTransport) {
		err = &TransportError{Err: err}
	}

	f.mu.Lock()
	t = f.setStatusLocked(models.StatusIdle)
	f.mu.Unlock()
	f.observe(t)

	f.logger.Warn("contact submission failed", zap.String("notice", string(notice)), zap.Error(err))
	if f.notifier != nil {
		f.notifier.Notify(notice)
	}
	return err
}

// Stop cancels the pending reset and refuses further submissions.
func (f *Flow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	f.generation++
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
}

func (f *Flow) reset(gen, epoch uint64) {
	f.mu.Lock()
	if f.generation != gen || f.status != models.StatusSuccess {
		f.mu.Unlock()
		return
	}
	f.pending = nil
	t := f.setStatusLocked(models.StatusIdle)
	if f.openEpoch == epoch {
		f.open = false
	}
	f.mu.Unlock()
	f.observe(t)
}

// setStatusLocked must be called with f.mu held.
func (f *Flow) setStatusLocked(to models.Status) *transition {
	from := f.status
	if !models.CanTransition(from, to) {
		f.logger.Error("invalid contact status transition",
			zap.String("from", from.String()),
			zap.String("to", to.String()))
		return nil
	}
	f.status = to
	metrics.ContactStatusTransitions.WithLabelValues(from.String(), to.String()).Inc()
	return &transition{from: from, to: to}
}

func (f *Flow) observe(t *transition) {
	if t == nil {
		return
	}
	f.logger.Debug("contact status transition",
		zap.String("from", t.from.String()),
		zap.String("to", t.to.String()))
	if f.observer != nil {
		f.observer(t.from, t.to)
	}
}
