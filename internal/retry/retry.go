// Copyright 2026 The Checktica Authors
// SPDX-License-Identifier: MIT

// Package retry runs an operation repeatedly with capped exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const defaultMultiplier = 2.0

// Policy bounds how often and how patiently an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialInterval is the wait after the first failed attempt.
	InitialInterval time.Duration

	// MaxInterval caps every wait.
	MaxInterval time.Duration

	// Multiplier scales the wait after each further failure. Zero means 2.
	Multiplier float64

	// Sleep waits for d or until ctx is done. If nil, a timer-based wait is
	// used. Tests replace it to avoid real delays.
	Sleep func(ctx context.Context, d time.Duration) error

	// Notify, if set, is called before each wait with the number of the
	// attempt that just failed, its error, and the upcoming delay.
	Notify func(attempt int, err error, delay time.Duration)
}

// Validate checks that the policy can run at least one attempt and that its
// intervals make sense.
func (p Policy) Validate() error {
	var errs []error
	if p.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts))
	}
	if p.InitialInterval < 0 {
		errs = append(errs, fmt.Errorf("initial interval must be non-negative, got %s", p.InitialInterval))
	}
	if p.MaxInterval < p.InitialInterval {
		errs = append(errs, fmt.Errorf("max interval %s is shorter than initial interval %s", p.MaxInterval, p.InitialInterval))
	}
	if p.Multiplier != 0 && p.Multiplier < 1 {
		errs = append(errs, fmt.Errorf("multiplier must be at least 1, got %g", p.Multiplier))
	}
	return errors.Join(errs...)
}

// Delay returns the wait that follows the given failed attempt (1-based).
// Delays never decrease and never exceed MaxInterval.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	mult := p.Multiplier
	if mult == 0 {
		mult = defaultMultiplier
	}
	d := float64(p.InitialInterval) * math.Pow(mult, float64(attempt-1))
	if d > float64(p.MaxInterval) || math.IsInf(d, 0) {
		return p.MaxInterval
	}
	return time.Duration(d)
}

// Do calls fn until it succeeds, returns an error that retryable rejects, or
// MaxAttempts is reached. The last error is returned unchanged. A nil
// retryable retries every error. If ctx ends during a wait, Do returns the
// error of the attempt that preceded it.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error, retryable func(error) bool) error {
	attempts := max(p.MaxAttempts, 1)
	sleep := p.Sleep
	if sleep == nil {
		sleep = wait
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := p.Delay(attempt - 1)
			if p.Notify != nil {
				p.Notify(attempt-1, lastErr, delay)
			}
			if err := sleep(ctx, delay); err != nil {
				return lastErr
			}
		}

		err := fn(ctx, attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if retryable != nil && !retryable(err) {
			return err
		}
	}

	return lastErr
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
