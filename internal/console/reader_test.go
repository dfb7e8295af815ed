package console

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader("  one\ttwo\n\nthree  "))

	for _, want := range []string{"one", "two", "three"} {
		got, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_NextLongToken(t *testing.T) {
	long := strings.Repeat("a", 200*1024)
	r := NewReader(strings.NewReader(long + " tail"))

	got, err := r.Next()
	require.NoError(t, err)
	assert.Len(t, got, len(long))

	got, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}
