package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newTestApp() *application {
	cfg := config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestApplication_StarterContextOutlivesStart(t *testing.T) {
	a := newTestApp()

	stopped := make(chan struct{})
	a.SetStarters(starterFunc(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			close(stopped)
		}()
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.Start(ctx))
	t.Cleanup(func() { _ = a.Stop() })

	select {
	case <-stopped:
		t.Fatal("starter context ended while the application context is alive")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("starter context was not cancelled with the application context")
	}
}

func TestApplication_StarterError(t *testing.T) {
	a := newTestApp()
	failed := errors.New("warm up failed")
	a.SetStarters(
		starterFunc(func(context.Context) error { return nil }),
		starterFunc(func(context.Context) error { return failed }),
	)

	err := a.Start(context.Background())

	assert.ErrorIs(t, err, failed)
}

func TestApplication_StopRunsClosers(t *testing.T) {
	a := newTestApp()
	closeErr := errors.New("close failed")

	closed := 0
	a.SetClosers(
		closerFunc(func() error { closed++; return nil }),
		closerFunc(func() error { closed++; return closeErr }),
	)

	require.NoError(t, a.Start(context.Background()))
	err := a.Stop()

	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, 2, closed)
}
