package easel

import (
	"slices"
	"time"
)

// FrameToken identifies a scheduled frame callback. The zero token is never
// issued.
type FrameToken uint64

// FrameFunc is called once with the frame timestamp, measured on the
// scheduler's monotonic clock.
type FrameFunc func(ts time.Duration)

// FrameScheduler requests one callback per display frame, like a browser's
// requestAnimationFrame.
type FrameScheduler interface {
	// Schedule queues fn for the next frame.
	Schedule(fn FrameFunc) FrameToken
	// Cancel drops a queued callback. Unknown or already run tokens are
	// ignored.
	Cancel(tok FrameToken)
	// Now returns the current time on the scheduler's clock.
	Now() time.Duration
}

type frameRequest struct {
	tok FrameToken
	fn  FrameFunc
}

// LoopScheduler is a FrameScheduler driven by an external loop calling
// RunFrame once per frame: the ebiten Game does so from Update, tests do so
// directly.
type LoopScheduler struct {
	clock   func() time.Duration
	queue   []frameRequest
	running []frameRequest // batch of the RunFrame in progress
	nextTok FrameToken
}

// NewLoopScheduler returns a scheduler reading time from clock. A nil clock
// uses a monotonic clock started now.
func NewLoopScheduler(clock func() time.Duration) *LoopScheduler {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}
	return &LoopScheduler{clock: clock}
}

// Schedule queues fn for the next RunFrame.
func (s *LoopScheduler) Schedule(fn FrameFunc) FrameToken {
	s.nextTok++
	s.queue = append(s.queue, frameRequest{tok: s.nextTok, fn: fn})
	return s.nextTok
}

// Cancel drops the queued callback for tok, including one waiting later in
// the frame currently running.
func (s *LoopScheduler) Cancel(tok FrameToken) {
	s.queue = slices.DeleteFunc(s.queue, func(r frameRequest) bool { return r.tok == tok })
	for i := range s.running {
		if s.running[i].tok == tok {
			s.running[i].fn = nil
		}
	}
}

// Now returns the clock reading.
func (s *LoopScheduler) Now() time.Duration { return s.clock() }

// Pending returns the number of queued callbacks.
func (s *LoopScheduler) Pending() int { return len(s.queue) }

// RunFrame runs every callback queued before the call, all with the same
// timestamp. Callbacks scheduled while the frame runs wait for the next one.
func (s *LoopScheduler) RunFrame() {
	if len(s.queue) == 0 {
		return
	}
	ts := s.clock()
	s.running, s.queue = s.queue, nil
	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			s.running[i].fn = nil
			fn(ts)
		}
	}
	s.running = nil
}

// ManualClock is a settable clock for driving a LoopScheduler by hand.
type ManualClock struct {
	now time.Duration
}

// Now returns the current reading.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }
