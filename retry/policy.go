// Package retry decides whether a classified failure should be retried and
// how long to wait before the next attempt.
//
// The policy is a pure function of (failure kind, attempt count, configuration)
// and holds no mutable state, so a single Policy value can be shared by any
// number of concurrent logical operations. The suspension itself is abstracted
// behind the Waiter interface with blocking and context-aware implementations
// supplying it.
//
// Example usage:
//
//	policy := retry.Policy{MaxRetries: 3, BackoffFactor: 0.5, Jitter: true}
//	decision := policy.Decide(apierr.KindServerError, attempt)
//	if decision.Retry {
//	    waiter.Wait(ctx, decision.Delay)
//	}
package retry

import (
	"math"
	"math/rand"
	"time"

	"github.com/grokipedia/grokipedia-go/apierr"
)

// Policy configures retry behavior for a client. It is immutable for the
// lifetime of the client instance.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt, so a
	// logical operation makes at most MaxRetries+1 transport calls. Zero
	// means the first failure is always terminal.
	MaxRetries int

	// BackoffFactor scales the exponential backoff, in seconds. A delay
	// before the (n+1)-th attempt is BackoffFactor * 2^n. Zero produces
	// zero delay on every retry.
	BackoffFactor float64

	// Jitter adds a uniformly random perturbation in [0, 0.1*delay) to each
	// backoff delay to avoid synchronized retry storms across clients.
	Jitter bool
}

// DefaultPolicy returns the policy used when none is configured:
// 3 retries, 0.5s backoff factor, jitter enabled.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:    3,
		BackoffFactor: 0.5,
		Jitter:        true,
	}
}

// Decision is the outcome of consulting the policy for one failed attempt.
type Decision struct {
	// Retry reports whether another attempt should be made.
	Retry bool
	// Delay is how long to wait before the next attempt. Zero when Retry
	// is false.
	Delay time.Duration
}

// Decide computes the retry decision for a classified failure of the given
// kind after the (attempt+1)-th transport call. attempt is 0-based.
//
// Non-retryable kinds never retry, regardless of attempt count. Retryable
// kinds retry only while attempt < MaxRetries; at attempt == MaxRetries the
// failure is surfaced as terminal.
func (p Policy) Decide(kind apierr.Kind, attempt int) Decision {
	if !kind.Retryable() {
		return Decision{}
	}
	if attempt >= p.MaxRetries {
		return Decision{}
	}
	return Decision{Retry: true, Delay: p.Backoff(attempt)}
}

// Backoff computes the delay before the (attempt+1)-th retry:
// BackoffFactor * 2^attempt seconds, plus a uniform random value in
// [0, 0.1*delay) when jitter is enabled.
func (p Policy) Backoff(attempt int) time.Duration {
	backoff := p.BackoffFactor * math.Pow(2, float64(attempt))
	if p.Jitter {
		backoff += rand.Float64() * 0.1 * backoff
	}
	return time.Duration(backoff * float64(time.Second))
}
