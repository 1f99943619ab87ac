package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProber_Probe(t *testing.T) {
	testCases := []struct {
		name            string
		handler         http.HandlerFunc
		timeout         time.Duration
		expectedHealthy bool
		expectedStatus  int
		expectErrorText bool
	}{
		{
			name: "ok is healthy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			timeout:         time.Second,
			expectedHealthy: true,
			expectedStatus:  http.StatusOK,
		},
		{
			name: "method not allowed is healthy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusMethodNotAllowed)
			},
			timeout:         time.Second,
			expectedHealthy: true,
			expectedStatus:  http.StatusMethodNotAllowed,
		},
		{
			name: "server error is unhealthy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			timeout:         time.Second,
			expectedHealthy: false,
			expectedStatus:  http.StatusInternalServerError,
			expectErrorText: true,
		},
		{
			name: "redirect is not followed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/elsewhere", http.StatusFound)
			},
			timeout:         time.Second,
			expectedHealthy: false,
			expectedStatus:  http.StatusFound,
			expectErrorText: true,
		},
		{
			name: "timeout is unhealthy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.WriteHeader(http.StatusOK)
			},
			timeout:         20 * time.Millisecond,
			expectedHealthy: false,
			expectedStatus:  0,
			expectErrorText: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seen := make(chan string, 1)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case seen <- r.Method + " " + r.URL.Path:
				default:
				}
				tc.handler(w, r)
			}))
			defer server.Close()

			res := NewProber(tc.timeout).Probe(context.Background(), server.URL+"/", "functions/submit")

			assert.Equal(t, tc.expectedHealthy, res.Healthy)
			assert.Equal(t, tc.expectedStatus, res.StatusCode)
			assert.Equal(t, tc.expectErrorText, res.Error != "")
			assert.False(t, res.Timestamp.IsZero())
			if tc.expectedStatus != 0 {
				assert.Equal(t, "HEAD /functions/submit", <-seen)
			}
		})
	}
}

func TestProber_Probe_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	res := NewProber(time.Second).Probe(context.Background(), url, "/functions/submit")

	assert.False(t, res.Healthy)
	assert.Equal(t, 0, res.StatusCode)
	assert.NotEmpty(t, res.Error)
}

func TestIsHealthyStatus(t *testing.T) {
	assert.True(t, IsHealthyStatus(http.StatusOK))
	assert.True(t, IsHealthyStatus(http.StatusMethodNotAllowed))
	assert.False(t, IsHealthyStatus(http.StatusNoContent))
	assert.False(t, IsHealthyStatus(http.StatusBadGateway))
}
