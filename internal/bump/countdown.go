package bump

import (
	"context"
	"sync"
	"time"

	"github.com/nenelobo/NeneloBot_Go/internal/logger"
	"github.com/nenelobo/NeneloBot_Go/internal/metrics"
)

// Messenger is the display collaborator: the countdown lives in one message
// that is created once, edited on each tick, and deleted on expiry.
type Messenger interface {
	SendEmbed(channelID, title, body string) (messageID string, err error)
	EditEmbed(channelID, messageID, title, body string) error
	DeleteMessage(channelID, messageID string) error
}

// CycleFlags guards the completion notification across restarts: it is
// fired only while the persisted notified flag is unset, and marked once
// the attempt succeeds.
type CycleFlags interface {
	Notified(ctx context.Context) bool
	MarkNotified(ctx context.Context)
}

// Display describes the countdown message. An empty MessageID tells the
// scheduler to create the message itself (the resume-from-persistence path
// has no pre-existing handle).
type Display struct {
	ChannelID string
	MessageID string
	Title     string
	// Render builds the message body from the formatted remaining time.
	Render func(remaining string) string
}

// Scheduler drives at most one logical countdown at a time. Each Start
// bumps a generation counter; tick chains compare their captured generation
// against the current one and stop silently when superseded, so a new
// trigger implicitly cancels the old chain.
type Scheduler struct {
	clock     Clock
	messenger Messenger
	flags     CycleFlags

	mu         sync.Mutex
	generation uint64
}

// NewScheduler creates a countdown scheduler.
func NewScheduler(clock Clock, messenger Messenger, flags CycleFlags) *Scheduler {
	return &Scheduler{clock: clock, messenger: messenger, flags: flags}
}

type countdown struct {
	s        *Scheduler
	gen      uint64
	target   time.Time
	display  Display
	onExpire func(ctx context.Context) error

	lastShown string
}

// Start binds a countdown to the target instant and begins ticking
// immediately. onExpire fires once when the target passes, guarded by the
// persisted notified flag; afterwards the display is torn down.
func (s *Scheduler) Start(ctx context.Context, target time.Time, display Display, onExpire func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	if display.MessageID == "" {
		id, err := s.messenger.SendEmbed(display.ChannelID, display.Title, display.Render(FormatRemaining(s.remainingSeconds(target))))
		if err != nil {
			log.Error(LogMsgDisplayCreateFailed, "channel", display.ChannelID, "error", err)
			return err
		}
		display.MessageID = id
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	log.Info(LogMsgCountdownStarted, "target", target, "channel", display.ChannelID, "generation", gen)

	c := &countdown{s: s, gen: gen, target: target, display: display, onExpire: onExpire}
	c.tick(ctx)
	return nil
}

// Generation returns the current countdown generation, exposed for tests.
func (s *Scheduler) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Scheduler) remainingSeconds(target time.Time) int64 {
	remaining := target.Sub(s.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	return int64(remaining / time.Second)
}

func (c *countdown) stale() bool {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.s.generation != c.gen
}

func (c *countdown) tick(ctx context.Context) {
	log := logger.FromContext(ctx)

	if c.stale() {
		log.Debug(LogMsgCountdownSuperseded, "generation", c.gen)
		return
	}

	secondsLeft := c.s.remainingSeconds(c.target)
	metrics.CountdownTicks.Inc()

	body := c.display.Render(FormatRemaining(secondsLeft))
	if body != c.lastShown {
		err := c.s.messenger.EditEmbed(c.display.ChannelID, c.display.MessageID, c.display.Title, body)
		if err != nil {
			// Transient display failure: the next tick is the retry.
			log.Warn(LogMsgDisplayUpdateFailed, "message", c.display.MessageID, "error", err)
		} else {
			c.lastShown = body
		}
	} else {
		metrics.CountdownEditsSkipped.Inc()
	}

	if secondsLeft <= 0 {
		c.expire(ctx)
		return
	}

	delay := time.Duration(NextTickDelay(secondsLeft)) * time.Millisecond
	c.s.clock.Schedule(delay, func() { c.tick(ctx) })
}

func (c *countdown) expire(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCountdownExpired, "target", c.target)

	if c.s.flags.Notified(ctx) {
		log.Info(LogMsgNotificationSkipped, "target", c.target)
	} else if err := c.onExpire(ctx); err == nil {
		c.s.flags.MarkNotified(ctx)
		metrics.BumpNotifications.Inc()
	}

	if err := c.s.messenger.DeleteMessage(c.display.ChannelID, c.display.MessageID); err != nil {
		log.Warn(LogMsgDisplayTeardownFailed, "message", c.display.MessageID, "error", err)
	}
}
