package jobs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/supchaser/media_queue/internal/utils/errs"
)

// Controls is the pause/cancel signal pair shared by a job's worker and the
// request handlers that steer it. The zero value is not usable, see NewControls.
type Controls struct {
	paused    atomic.Bool
	cancelled atomic.Bool

	mu     sync.Mutex
	resume chan struct{} // closed while running, replaced on pause

	done       chan struct{}
	cancelOnce sync.Once
}

func NewControls() *Controls {
	c := &Controls{
		resume: make(chan struct{}),
		done:   make(chan struct{}),
	}
	close(c.resume)
	return c
}

// Pause sets the pause flag. It reports whether the flag changed.
func (c *Controls) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused.Load() {
		return false
	}
	c.resume = make(chan struct{})
	c.paused.Store(true)
	return true
}

// Resume clears the pause flag and wakes a blocked worker. It reports whether
// the flag changed.
func (c *Controls) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused.Load() {
		return false
	}
	c.paused.Store(false)
	close(c.resume)
	return true
}

// Cancel sets the cancel flag. Only the first call has an effect.
func (c *Controls) Cancel() bool {
	changed := false
	c.cancelOnce.Do(func() {
		c.cancelled.Store(true)
		close(c.done)
		changed = true
	})
	return changed
}

func (c *Controls) Paused() bool {
	return c.paused.Load()
}

func (c *Controls) Cancelled() bool {
	return c.cancelled.Load()
}

// Done is closed once the job is cancelled.
func (c *Controls) Done() <-chan struct{} {
	return c.done
}

// WaitWhilePaused blocks until the job is running again. It returns
// errs.ErrCancelled when the job is cancelled before or during the wait.
func (c *Controls) WaitWhilePaused(ctx context.Context) error {
	if c.Cancelled() {
		return errs.ErrCancelled
	}

	c.mu.Lock()
	resume := c.resume
	c.mu.Unlock()

	select {
	case <-resume:
		if c.Cancelled() {
			return errs.ErrCancelled
		}
		return nil
	case <-c.done:
		return errs.ErrCancelled
	case <-ctx.Done():
		return ctx.Err()
	}
}
