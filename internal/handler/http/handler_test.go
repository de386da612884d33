package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/MKhiriev/julekalender/internal/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testHandler struct {
	*Handler
	launcher *mock.MockLauncher
	appInfo  *mock.MockAppInfoService
	router   http.Handler
}

func newTestHandler(t *testing.T, cfg config.App) *testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	launcher := mock.NewMockLauncher(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(launcher, appInfo, cfg, logger.Nop())
	return &testHandler{Handler: h, launcher: launcher, appInfo: appInfo, router: h.Init()}
}

// do sends a request through the full router.
func (th *testHandler) do(t *testing.T, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
