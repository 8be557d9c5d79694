/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"
	"time"
)

// Attempt records one failed attempt for diagnostics.
type Attempt struct {
	// Number is the 1-based attempt number.
	Number int

	// Err is the failure that triggered the retry decision.
	Err error

	// Delay is the backoff applied after this attempt; zero when the policy
	// gave up instead of retrying.
	Delay time.Duration
}

// Trace is the diagnostic record of a Do invocation.
type Trace struct {
	// Failures holds one entry per failed attempt, in order.
	Failures []Attempt
}

// Retries returns the number of retries performed (failed attempts that were
// followed by another attempt).
func (t Trace) Retries() int {
	n := 0
	for _, a := range t.Failures {
		if a.Delay > 0 {
			n++
		}
	}
	return n
}

// Policy is a retry policy value object. It is independent of any specific
// API: callers supply the retryable-error predicate.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the backoff after the first failed attempt.
	BaseDelay time.Duration

	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration

	// Multiplier scales the delay after each failed attempt.
	Multiplier float64

	// Retryable decides whether an error is worth retrying. A nil predicate
	// retries nothing.
	Retryable func(error) bool

	// Sleep overrides the wait between attempts. Nil uses a context-aware
	// timer. Tests inject this to avoid real delays.
	Sleep func(context.Context, time.Duration) error
}

// Default returns the standard policy: 5 attempts, delays doubling from 1s
// with a 16s ceiling (worst-case cumulative backoff 31s).
func Default(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    16 * time.Second,
		Multiplier:  2,
		Retryable:   retryable,
	}
}

// Do invokes fn under the policy. It returns the trace of failed attempts
// together with the terminal outcome: nil once fn succeeds, the last error
// when attempts are exhausted or the error is not retryable, or the context
// error if cancellation interrupts a backoff wait.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) (Trace, error) {
	var trace Trace
	delay := p.BaseDelay

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return trace, nil
		}

		retryable := p.Retryable != nil && p.Retryable(err)
		if !retryable || attempt >= p.MaxAttempts {
			trace.Failures = append(trace.Failures, Attempt{Number: attempt, Err: err})
			return trace, err
		}

		trace.Failures = append(trace.Failures, Attempt{Number: attempt, Err: err, Delay: delay})
		if err := p.sleep(ctx, delay); err != nil {
			return trace, err
		}

		delay = time.Duration(float64(delay) * p.Multiplier)
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		return p.Sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
