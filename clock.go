package robobattle

import (
	"context"
	"sync"
	"time"
)

// Clock is the source of time of a battle. The battle reads Now exactly once when it starts and once
// every turn, and moves robots by the time elapsed between those readings.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep pauses for d or until ctx is done, in which case the error of ctx is returned.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StepClock is a Clock that advances by a fixed step every time it is read, so that every turn of a
// battle simulates exactly the same amount of time. Sleeping does not block and does not advance it.
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	slept time.Duration
}

// NewStepClock returns a StepClock that starts at start and advances by step on each read.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(c.step)
	return c.now
}

func (c *StepClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.slept += d
	c.mu.Unlock()
	return nil
}

// Slept returns the total duration passed to Sleep.
func (c *StepClock) Slept() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slept
}
