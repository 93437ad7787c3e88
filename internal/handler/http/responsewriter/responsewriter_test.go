package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
}

func TestWriteHeader_RecordsStatus(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		wrapped := Wrap(rec)

		wrapped.WriteHeader(status)

		assert.Equal(t, status, wrapped.StatusCode())
		assert.Equal(t, status, rec.Code)
	}
}

func TestWriteHeader_SecondCallIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWrite_CountsBytesAcrossCalls(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte(`{"summary":`))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	_, err = wrapped.Write([]byte(`"ok"}`))
	require.NoError(t, err)

	assert.Equal(t, 16, wrapped.BytesWritten())
	assert.Equal(t, `{"summary":"ok"}`, rec.Body.String())
}

func TestWrite_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	_, err := wrapped.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, http.ResponseWriter(rec), wrapped.Unwrap())
}
