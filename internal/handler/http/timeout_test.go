package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeout_FastRequestPasses(t *testing.T) {
	handler := Timeout(time.Second)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimeout_SlowRequestGets504(t *testing.T) {
	handler := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.JSONEq(t, `{"error":"request timeout"}`, rec.Body.String())
}

func TestTimeout_HandlerContextCanceled(t *testing.T) {
	canceled := make(chan struct{})
	handler := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		close(canceled)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary", nil))

	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("handler context was not canceled on timeout")
	}
}

func TestInputValidation_LongURIRejected(t *testing.T) {
	handler := InputValidation()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/summary?url="+strings.Repeat("a", 5000), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestURITooLong, rec.Code)
}

func TestInputValidation_NormalRequestPasses(t *testing.T) {
	handler := InputValidation()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summary?url=https://example.com", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
