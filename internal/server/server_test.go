package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/reqvalidate/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	logger := zerolog.Nop()
	return New(config.DefaultConfig(), &logger)
}

func TestServer_NotInitialized(t *testing.T) {
	s := newTestServer()

	assert.ErrorIs(t, s.Start(), ErrNotInitialized)
	assert.ErrorIs(t, s.Shutdown(context.Background()), ErrNotInitialized)
}

func TestServer_SetupHTTPServer(t *testing.T) {
	s := newTestServer()
	s.Config.Server.Port = "9999"
	s.Config.Server.ReadTimeout = 7

	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":9999", s.httpServer.Addr)
	assert.Equal(t, 7*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 30*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, s.httpServer.IdleTimeout)
	assert.Equal(t, 30*time.Second, s.ShutdownTimeout())
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := newTestServer()
	s.Config.Server.Port = "0"
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Shutdown before or after ListenAndServe begins both end Start cleanly.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
