package services

import (
	"fmt"
	"sync"
	"time"
)

// MessageRateLimiter caps outbound messages per phone number inside a
// sliding window, so a chatty user cannot drain the messaging quota.
type MessageRateLimiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
}

// NewMessageRateLimiter creates a limiter allowing maxRequests per window
// for each phone number.
func NewMessageRateLimiter(maxRequests int, window time.Duration) *MessageRateLimiter {
	return &MessageRateLimiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow records one send attempt for the number, or rejects it when the
// window is full.
func (rl *MessageRateLimiter) Allow(phoneNumber string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.dropExpired(phoneNumber, now)

	if len(rl.requests[phoneNumber]) >= rl.maxRequests {
		return fmt.Errorf("maximum %d messages per %v", rl.maxRequests, rl.window)
	}
	rl.requests[phoneNumber] = append(rl.requests[phoneNumber], now)
	return nil
}

func (rl *MessageRateLimiter) dropExpired(phoneNumber string, now time.Time) {
	requests, exists := rl.requests[phoneNumber]
	if !exists {
		return
	}
	cutoff := now.Add(-rl.window)
	valid := requests[:0]
	for _, req := range requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}
	if len(valid) == 0 {
		delete(rl.requests, phoneNumber)
		return
	}
	rl.requests[phoneNumber] = valid
}

// Reset clears all tracked numbers.
func (rl *MessageRateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.requests = make(map[string][]time.Time)
}
