package server

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/handler"
	httphandler "github.com/MKhiriev/julekalender/internal/handler/http"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingCloser struct {
	name  string
	order *[]string
	err   error
}

func (c recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func newTestHandlers(t *testing.T) *handler.Handlers {
	ctrl := gomock.NewController(t)
	return &handler.Handlers{
		HTTP: httphandler.NewHandler(mock.NewMockLauncher(ctrl), mock.NewMockAppInfoService(ctrl), config.App{}, logger.Nop()),
	}
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newTestHandlers(t), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ShutdownClosesResourcesOnce(t *testing.T) {
	var order []string
	srv, err := NewServer(newTestHandlers(t),
		config.Server{HTTPAddress: "localhost:0", RequestTimeout: time.Second},
		logger.Nop(),
		recordingCloser{name: "window", order: &order},
		recordingCloser{name: "store", order: &order, err: errors.New("already closed")},
	)
	require.NoError(t, err)

	srv.Shutdown()
	srv.Shutdown()

	assert.Equal(t, []string{"window", "store"}, order)
}

func TestServer_RunReturnsWhenListenFails(t *testing.T) {
	var order []string
	srv, err := NewServer(newTestHandlers(t),
		config.Server{HTTPAddress: "127.0.0.1:-1", RequestTimeout: time.Second},
		logger.Nop(),
		recordingCloser{name: "window", order: &order},
	)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after a listen failure")
	}
	assert.Equal(t, []string{"window"}, order)
}
