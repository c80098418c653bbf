package mcperr

import "time"

// Recovery policy. The delay and retry counts are metadata read from the
// kind table; only the price API client currently runs a real retry loop
// over them. Node RPC operations consume them as advisory data only.

// IsRecoverable reports whether retrying the failed operation can succeed.
// Only network-class errors qualify.
func IsRecoverable(err error) bool {
	return kindTable[Classify(err).kind].recoverable
}

// RetryDelay returns how long to wait before the given retry attempt.
// Rate-limit errors use a fixed 60s delay; network and HTTP errors use
// exponential backoff 2^min(attempt, cap) seconds; everything else 1s.
func RetryDelay(err error, attempt uint) time.Duration {
	m := kindTable[Classify(err).kind]
	if m.fixedDelay > 0 {
		return time.Duration(m.fixedDelay) * time.Second
	}
	if m.delayCap > 0 {
		exp := attempt
		if exp > m.delayCap {
			exp = m.delayCap
		}
		return time.Duration(uint64(1)<<exp) * time.Second
	}
	return time.Second
}

// MaxRetries returns the retry budget for the error's kind. A value of 1
// means a single attempt, no retry.
func MaxRetries(err error) uint {
	return kindTable[Classify(err).kind].maxRetries
}
