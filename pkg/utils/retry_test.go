package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	fatal := errors.New("fatal")
	temporary := errors.New("temporary")

	testCases := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "first attempt succeeds",
			wantCalls: 1,
		},
		{
			name:      "succeeds after failures",
			failures:  []error{temporary, temporary},
			wantCalls: 3,
		},
		{
			name:      "attempts exhausted",
			failures:  []error{temporary, temporary, temporary, temporary},
			wantCalls: 3,
			wantErr:   temporary,
		},
		{
			name:      "permanent error is not retried",
			failures:  []error{fatal},
			wantCalls: 1,
			wantErr:   fatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fn := func(context.Context) error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}

			cfg := RetryConfig{
				MaxAttempts:  3,
				InitialDelay: time.Millisecond,
				Multiplier:   2,
				Permanent:    func(err error) bool { return errors.Is(err, fatal) },
			}
			err := Retry(context.Background(), cfg, fn)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return errors.New("temporary")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
