package bump

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives countdown ticks by hand: scheduled callbacks queue up and
// advance moves time forward before running them.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []scheduledCall
}

type scheduledCall struct {
	delay time.Duration
	fn    func()
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Schedule(d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, scheduledCall{delay: d, fn: fn})
}

// runNext advances the clock by the next callback's delay and runs it.
// Returns false when nothing is scheduled.
func (c *fakeClock) runNext() bool {
	c.mu.Lock()
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return false
	}
	call := c.pending[0]
	c.pending = c.pending[1:]
	c.now = c.now.Add(call.delay)
	c.mu.Unlock()

	call.fn()
	return true
}

func (c *fakeClock) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// fakeMessenger records display traffic and doubles as the plain Sender.
type fakeMessenger struct {
	mu       sync.Mutex
	sends    []string // embed bodies
	edits    []string // embed bodies
	deletes  int
	messages []string // plain message contents
	renames  []string
	editErr  error
	nextID   int
}

func (m *fakeMessenger) SendEmbed(channelID, title, body string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.sends = append(m.sends, body)
	return "msg-" + title, nil
}

func (m *fakeMessenger) EditEmbed(channelID, messageID, title, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editErr != nil {
		return m.editErr
	}
	m.edits = append(m.edits, body)
	return nil
}

func (m *fakeMessenger) DeleteMessage(channelID, messageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	return nil
}

func (m *fakeMessenger) SendMessage(channelID, content string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, content)
	return "plain", nil
}

func (m *fakeMessenger) RenameChannel(channelID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renames = append(m.renames, name)
	return nil
}

func (m *fakeMessenger) editCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edits)
}

// fakeFlags is an in-memory notified flag.
type fakeFlags struct {
	mu       sync.Mutex
	notified bool
}

func (f *fakeFlags) Notified(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notified
}

func (f *fakeFlags) MarkNotified(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = true
}

func TestCountdownIdempotentDisplayUpdate(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{}
	sched := NewScheduler(clock, messenger, &fakeFlags{})

	display := Display{
		ChannelID: "chan",
		MessageID: "existing",
		Title:     "Next bump",
		// A constant body makes every tick render identical text.
		Render: func(string) string { return "static" },
	}

	err := sched.Start(context.Background(), clock.Now().Add(30*time.Second), display, func(context.Context) error { return nil })
	require.NoError(t, err)

	// First tick edits, the next two render the same text and must skip.
	clock.runNext()
	clock.runNext()

	assert.Equal(t, 1, messenger.editCount(), "identical text must produce exactly one edit")
}

func TestCountdownExpiry(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{}
	flags := &fakeFlags{}
	sched := NewScheduler(clock, messenger, flags)

	expired := 0
	display := Display{
		ChannelID: "chan",
		MessageID: "existing",
		Title:     "Next bump",
		Render:    func(remaining string) string { return remaining },
	}

	err := sched.Start(context.Background(), clock.Now().Add(3*time.Second), display, func(context.Context) error {
		expired++
		return nil
	})
	require.NoError(t, err)

	for clock.runNext() {
	}

	assert.Equal(t, 1, expired, "completion notification fires exactly once")
	assert.True(t, flags.notified)
	assert.Equal(t, 1, messenger.deletes, "display is torn down after expiry")
	assert.Equal(t, 0, clock.pendingCount(), "tick chain terminates")
}

func TestCountdownExpiryAlreadyNotified(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{}
	flags := &fakeFlags{notified: true}
	sched := NewScheduler(clock, messenger, flags)

	expired := 0
	display := Display{ChannelID: "chan", MessageID: "existing", Render: func(r string) string { return r }}

	err := sched.Start(context.Background(), clock.Now().Add(-time.Second), display, func(context.Context) error {
		expired++
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, expired, "persisted flag suppresses a duplicate notification")
	assert.Equal(t, 1, messenger.deletes)
}

func TestCountdownNotificationFailureLeavesFlagUnset(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{}
	flags := &fakeFlags{}
	sched := NewScheduler(clock, messenger, flags)

	display := Display{ChannelID: "chan", MessageID: "existing", Render: func(r string) string { return r }}

	err := sched.Start(context.Background(), clock.Now().Add(-time.Second), display, func(context.Context) error {
		return errors.New("send failed")
	})
	require.NoError(t, err)

	assert.False(t, flags.notified, "a failed attempt must not mark the cycle notified")
}

func TestCountdownSuperseded(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{}
	sched := NewScheduler(clock, messenger, &fakeFlags{})

	display := Display{ChannelID: "chan", MessageID: "old", Render: func(r string) string { return r }}
	err := sched.Start(context.Background(), clock.Now().Add(time.Hour), display, func(context.Context) error { return nil })
	require.NoError(t, err)
	require.Equal(t, 1, clock.pendingCount())

	// A new trigger binds a new countdown; the old chain's next tick must
	// notice the generation change and stop without scheduling again.
	display2 := Display{ChannelID: "chan", MessageID: "new", Render: func(r string) string { return r }}
	err = sched.Start(context.Background(), clock.Now().Add(2*time.Hour), display2, func(context.Context) error { return nil })
	require.NoError(t, err)

	editsBefore := messenger.editCount()
	clock.runNext() // stale tick from the first chain

	assert.Equal(t, editsBefore, messenger.editCount(), "stale tick must not touch the display")
	assert.Equal(t, 1, clock.pendingCount(), "only the new chain stays armed")
	assert.Equal(t, uint64(2), sched.Generation())
}

func TestCountdownTransientEditFailure(t *testing.T) {
	clock := newFakeClock(time.Unix(1_700_000_000, 0))
	messenger := &fakeMessenger{editErr: errors.New("rate limited")}
	sched := NewScheduler(clock, messenger, &fakeFlags{})

	display := Display{ChannelID: "chan", MessageID: "existing", Render: func(r string) string { return r }}
	err := sched.Start(context.Background(), clock.Now().Add(time.Minute), display, func(context.Context) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 1, clock.pendingCount(), "edit failure keeps the countdown running")
}
