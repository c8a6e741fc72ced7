package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferLogger(buf *bytes.Buffer) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.InfoLevel,
	)

	return zap.New(core).Sugar()
}

func TestNew(t *testing.T) {
	lg, err := New()

	require.NoError(t, err)
	require.NotNil(t, lg)

	lg.Info("test")
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		handler http.HandlerFunc
		want    []string
	}{
		{
			name:   "created with body",
			method: http.MethodPost,
			target: "/api/rider/assignments",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("hello"))
			},
			want: []string{"request->", "uri: /api/rider/assignments", "method: POST", "status: 201", "size: 5", "duration:"},
		},
		{
			name:   "implicit ok",
			method: http.MethodGet,
			target: "/api/rider/state",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			},
			want: []string{"status: 200", "size: 2"},
		},
		{
			name:   "no content",
			method: http.MethodGet,
			target: "/api/rider/order",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want: []string{"status: 204", "size: 0"},
		},
		{
			name:   "multiple writes",
			method: http.MethodGet,
			target: "/api/rider/earnings",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
				w.Write([]byte("world"))
			},
			want: []string{"size: 10"},
		},
		{
			name:   "slow handler",
			method: http.MethodPost,
			target: "/api/rider/order/otp",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(10 * time.Millisecond)
				w.WriteHeader(http.StatusUnprocessableEntity)
			},
			want: []string{"status: 422", "duration:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := LoggingMiddleware(bufferLogger(&buf))(tt.handler)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			logOutput := buf.String()
			for _, want := range tt.want {
				assert.Contains(t, logOutput, want)
			}
			assert.NotContains(t, logOutput, "request_id:")
		})
	}
}

func TestLoggingMiddleware_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingMiddleware(bufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":409,"message":"no active order"}`))
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rider/order/arrive", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":409,"message":"no active order"}`, w.Body.String())
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var buf bytes.Buffer

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	handler := middleware.RequestID(LoggingMiddleware(bufferLogger(&buf))(nextHandler))

	req := httptest.NewRequest(http.MethodPost, "/api/rider/order/otp", nil)
	req.Header.Set(middleware.RequestIDHeader, "rider-42")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "uri: /api/rider/order/otp")
	assert.Contains(t, logOutput, "status: 202")
	assert.Contains(t, logOutput, "request_id: rider-42")
}

func TestLoggingResponseWriter(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := &loggingResponseWriter{
		ResponseWriter: recorder,
		responseData:   &responseData{status: http.StatusOK},
	}

	rw.WriteHeader(http.StatusBadRequest)
	size, err := rw.Write([]byte("test"))

	require.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Equal(t, 4, rw.responseData.size)
	assert.Equal(t, http.StatusBadRequest, rw.responseData.status)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "test", recorder.Body.String())
}
