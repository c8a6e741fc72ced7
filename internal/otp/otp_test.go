package otp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ibeloyar/courierdesk/pgk/retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidFormat(t *testing.T) {
	valid := []string{"123456", "000000", "999999"}
	for _, code := range valid {
		t.Run(code, func(t *testing.T) {
			assert.True(t, ValidFormat(code))
		})
	}

	invalid := []string{"", "12345", "1234567", "abcdef", "12a456", " 12345", "12345 ", "١٢٣٤٥٦"}
	for _, code := range invalid {
		t.Run("invalid_"+code, func(t *testing.T) {
			assert.False(t, ValidFormat(code))
		})
	}
}

func TestFormatVerifier(t *testing.T) {
	ok, err := FormatVerifier{}.Verify(context.Background(), "job_1", "999999")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = FormatVerifier{}.Verify(context.Background(), "job_1", "99999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func newTestClient() *retryablehttp.RetryableClient {
	return retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{
		MaxRetries: 1,
		BaseDelay:  time.Millisecond,
		MaxJitter:  time.Millisecond,
	})
}

func TestRemoteVerifier_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/otp/verify", r.URL.Path)

		var body verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "job_1", body.OrderID)
		assert.Equal(t, "123456", body.Code)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	v := NewRemoteVerifier(server.URL+"/", newTestClient())

	ok, err := v.Verify(context.Background(), "job_1", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemoteVerifier_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	v := NewRemoteVerifier(server.URL, newTestClient())

	ok, err := v.Verify(context.Background(), "job_1", "654321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoteVerifier_MalformedCodeSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	v := NewRemoteVerifier(server.URL, newTestClient())

	ok, err := v.Verify(context.Background(), "job_1", "12a456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestRemoteVerifier_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	v := NewRemoteVerifier(server.URL, newTestClient())

	ok, err := v.Verify(context.Background(), "job_1", "123456")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRemoteVerifier_AddsScheme(t *testing.T) {
	v := NewRemoteVerifier("otp.local:9000", newTestClient())
	assert.True(t, strings.HasPrefix(v.address, "http://"))
}
