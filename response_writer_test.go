package wren

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderDefaults(t *testing.T) {
	t.Parallel()

	rec := new(recorder)
	rec.reset(httptest.NewRecorder())

	assert.Equal(t, 200, rec.Status())
	assert.False(t, rec.Written())
	assert.Equal(t, notWritten, rec.Size())
}

func TestRecorderWriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rec := new(recorder)
	rec.reset(w)

	rec.WriteHeader(204)
	assert.True(t, rec.Written())
	assert.Equal(t, 204, rec.Status())
	assert.Equal(t, 0, rec.Size())

	// Subsequent calls do not change the recorded status.
	rec.WriteHeader(500)
	assert.Equal(t, 204, rec.Status())
}

func TestRecorderWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rec := new(recorder)
	rec.reset(w)

	n, err := rec.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, rec.Size())
	assert.Equal(t, 200, rec.Status())
	assert.Equal(t, "hello", w.Body.String())

	_, err = rec.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 11, rec.Size())
}

func TestRecorderUnwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rec := new(recorder)
	rec.reset(w)
	assert.Equal(t, w, rec.Unwrap())
}

func TestRecorderFlush(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rec := new(recorder)
	rec.reset(w)

	rec.Flush()
	assert.True(t, w.Flushed)
}
