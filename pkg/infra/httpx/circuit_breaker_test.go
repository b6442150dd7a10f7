package httpx

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() error
		expectErr string
	}{
		{
			name: "success",
			fn:   func() error { return nil },
		},
		{
			name:      "failure is wrapped with the breaker name",
			fn:        func() error { return errors.New("model unavailable") },
			expectErr: "breaker (ollama): model unavailable",
		},
		{
			name:      "panic is recovered",
			fn:        func() error { panic("boom") },
			expectErr: "panic recovered: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker("ollama", 30*time.Second, 3, nil)
			err := breaker.Execute(tt.fn)
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestCircuitBreaker_KeepsUnderlyingError(t *testing.T) {
	sentinel := errors.New("sentinel")
	breaker := NewCircuitBreaker("wrap", 30*time.Second, 3, nil)

	err := breaker.Execute(func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open", 30*time.Second, 2, nil)
	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}
	assert.Equal(t, "open", breaker.State())

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery", 50*time.Millisecond, 1, nil)
	assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))

	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := NewCircuitBreaker("concurrent", 30*time.Second, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, "closed", breaker.State())
}
